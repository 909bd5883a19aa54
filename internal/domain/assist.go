package domain

// Lookup confidence levels reported by the quote identification helper.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// QuoteLookup is the result of identifying a full quote from a fragment.
// Found distinguishes the identified and not-identified cases; when
// Found is false only Message carries information.
type QuoteLookup struct {
	Found      bool     `json:"found"`
	Text       string   `json:"text,omitempty"`
	AuthorName string   `json:"authorName,omitempty"`
	Source     string   `json:"source,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Confidence string   `json:"confidence,omitempty"`
	Message    string   `json:"message,omitempty"`
}
