package ports

import "context"

// TextGenerator is a single-shot prompt/response call to an external
// language model. Implementations respect context cancellation and map
// transport failures to domain.ErrUnavailable.
//
// The assist services treat generator output as untrusted text: they
// parse it best-effort and degrade to empty results on failure.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
