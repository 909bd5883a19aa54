// Package maintenance implements the one-off curation utilities run by
// cmd/maintenance: duplicate detection and removal, author merging,
// orphan tag cleanup, and full-collection export.
package maintenance

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wisdomhub/internal/adapters/storage/sqlite"
	"wisdomhub/internal/domain"
)

// Commands accepted on the CLI.
const (
	CommandCheckDuplicates  = "check-duplicates"
	CommandRemoveDuplicates = "remove-duplicates"
	CommandMergeAuthors     = "merge-authors"
	CommandCleanupTags      = "cleanup-tags"
	CommandExport           = "export"
)

// Config holds configuration for a maintenance run.
type Config struct {
	// Command selects which utility to run.
	Command string

	// DBPath is the SQLite database file to operate on.
	DBPath string

	// Output is the export destination file. Empty writes to stdout.
	Output string
}

// ParseConfig parses CLI flags and the command argument into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		DBPath: filepath.Join("data", "wisdomhub.db"),
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "quote database path")
	fs.StringVar(&cfg.Output, "out", "", "export destination file (default stdout)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() != 1 {
		return Config{}, fmt.Errorf("expected exactly one command, one of: %s",
			strings.Join(commands(), ", "))
	}

	cfg.Command = fs.Arg(0)
	if !validCommand(cfg.Command) {
		return Config{}, fmt.Errorf("unknown command %q, expected one of: %s",
			cfg.Command, strings.Join(commands(), ", "))
	}

	return cfg, nil
}

// Run executes the selected maintenance command against the store.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if out == nil {
		out = io.Discard
	}

	store, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	switch cfg.Command {
	case CommandCheckDuplicates:
		return checkDuplicates(ctx, store, out)
	case CommandRemoveDuplicates:
		return removeDuplicates(ctx, store, out)
	case CommandMergeAuthors:
		return mergeAuthors(ctx, store, out)
	case CommandCleanupTags:
		return cleanupTags(ctx, store, out)
	case CommandExport:
		return exportQuotes(ctx, store, cfg.Output, out)
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}

func checkDuplicates(ctx context.Context, store *sqlite.Store, out io.Writer) error {
	groups, err := store.DuplicateQuotes(ctx)
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		_, err = fmt.Fprintln(out, "no duplicate quotes found")
		return err
	}

	for _, group := range groups {
		fmt.Fprintf(out, "%d copies of %q\n", len(group.Quotes), truncate(group.Text, 60))

		for _, quote := range group.Quotes {
			fmt.Fprintf(out, "  %s  %s  %s\n",
				quote.ID, quote.CreatedAt.Format(time.RFC3339), quote.AuthorName)
		}
	}

	_, err = fmt.Fprintf(out, "%d duplicate group(s)\n", len(groups))

	return err
}

func removeDuplicates(ctx context.Context, store *sqlite.Store, out io.Writer) error {
	removed, err := store.RemoveDuplicateQuotes(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "removed %d duplicate quote(s)\n", removed)

	return err
}

func mergeAuthors(ctx context.Context, store *sqlite.Store, out io.Writer) error {
	merged, err := store.MergeAuthors(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "merged %d duplicate author(s)\n", merged)

	return err
}

func cleanupTags(ctx context.Context, store *sqlite.Store, out io.Writer) error {
	removed, err := store.DeleteOrphanTags(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "deleted %d orphaned tag(s)\n", removed)

	return err
}

// exportRecord is the JSON shape of one exported quote.
type exportRecord struct {
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Source     string    `json:"source,omitempty"`
	Tags       []string  `json:"tags"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
}

func exportQuotes(ctx context.Context, store *sqlite.Store, dest string, out io.Writer) error {
	quotes, err := store.ExportQuotes(ctx)
	if err != nil {
		return err
	}

	records := make([]exportRecord, len(quotes))
	for i, quote := range quotes {
		records[i] = toExportRecord(quote)
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}

	payload = append(payload, '\n')

	if dest == "" {
		_, err = out.Write(payload)
		return err
	}

	if err := os.WriteFile(dest, payload, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	_, err = fmt.Fprintf(out, "exported %d quote(s) to %s\n", len(records), dest)

	return err
}

func toExportRecord(quote *domain.Quote) exportRecord {
	return exportRecord{
		Text:       quote.Text,
		AuthorName: quote.AuthorName,
		Source:     quote.Source,
		Tags:       quote.TagNames(),
		IsFavorite: quote.Favorite,
		CreatedAt:  quote.CreatedAt,
	}
}

func commands() []string {
	return []string{
		CommandCheckDuplicates,
		CommandRemoveDuplicates,
		CommandMergeAuthors,
		CommandCleanupTags,
		CommandExport,
	}
}

func validCommand(cmd string) bool {
	for _, known := range commands() {
		if cmd == known {
			return true
		}
	}

	return false
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max] + "..."
}
