// Package datasync publishes the rendered portal records to the database
// and exports them back.
package datasync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/mvzaanen/N-uu-conversion/internal/portal"
	"github.com/mvzaanen/N-uu-conversion/internal/store"
)

// PublishResult tracks counts for each publish operation.
type PublishResult struct {
	New       int `yaml:"new"`
	Updated   int `yaml:"updated"`
	Unchanged int `yaml:"unchanged"`
	Deleted   int `yaml:"deleted"`
}

// PublishOptions controls publish behavior.
type PublishOptions struct {
	DryRun bool
	// Replace deletes every stored record before publishing.
	Replace bool
}

// Publisher writes portal records to a RecordRepository.
type Publisher struct {
	repo   store.RecordRepository
	logger *slog.Logger
}

func NewPublisher(repo store.RecordRepository, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{repo: repo, logger: logger}
}

// Publish stores records. A stored record for the same line is overwritten
// when its headword or text differs, and stored lines that records no longer
// hold are deleted.
func (p *Publisher) Publish(ctx context.Context, records []portal.Record, opts PublishOptions) (*PublishResult, error) {
	var result PublishResult

	existing, err := p.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.FindAll() > %w", err)
	}
	byLine := make(map[int]store.PortalRecord, len(existing))
	for _, r := range existing {
		byLine[r.Line] = r
	}

	if opts.Replace {
		result.Deleted = len(existing)
		if !opts.DryRun {
			deleted, err := p.repo.DeleteAll(ctx)
			if err != nil {
				return nil, fmt.Errorf("repo.DeleteAll() > %w", err)
			}
			result.Deleted = int(deleted)
		}
		byLine = map[int]store.PortalRecord{}
	}

	for _, r := range records {
		stored, ok := byLine[r.Line]
		if ok && stored.Headword == r.Headword && stored.Record == r.Text {
			result.Unchanged++
			continue
		}

		if !opts.DryRun {
			if err := p.repo.Upsert(ctx, &store.PortalRecord{
				Line:     r.Line,
				Headword: r.Headword,
				Record:   r.Text,
			}); err != nil {
				return nil, fmt.Errorf("repo.Upsert(line %d) > %w", r.Line, err)
			}
		}
		if ok {
			result.Updated++
			p.logger.Debug("updated portal record", "line", r.Line, "headword", r.Headword)
		} else {
			result.New++
		}
	}

	if stale := staleLines(byLine, records); len(stale) > 0 {
		deleted := len(stale)
		if !opts.DryRun {
			n, err := p.repo.DeleteByLines(ctx, stale)
			if err != nil {
				return nil, fmt.Errorf("repo.DeleteByLines() > %w", err)
			}
			deleted = int(n)
		}
		result.Deleted += deleted
		p.logger.Debug("removed stale portal records", "lines", stale)
	}

	p.logger.Info("published portal records",
		"new", result.New,
		"updated", result.Updated,
		"unchanged", result.Unchanged,
		"deleted", result.Deleted,
		"dry_run", opts.DryRun,
	)
	return &result, nil
}

// staleLines returns the stored lines missing from records, in order.
func staleLines(stored map[int]store.PortalRecord, records []portal.Record) []int {
	current := make(map[int]bool, len(records))
	for _, r := range records {
		current[r.Line] = true
	}
	var lines []int
	for line := range stored {
		if !current[line] {
			lines = append(lines, line)
		}
	}
	slices.Sort(lines)
	return lines
}

// Exporter reads the stored records back.
type Exporter struct {
	repo store.RecordRepository
}

func NewExporter(repo store.RecordRepository) *Exporter {
	return &Exporter{repo: repo}
}

// Export returns every stored record in line order.
func (e *Exporter) Export(ctx context.Context) ([]store.PortalRecord, error) {
	records, err := e.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.FindAll() > %w", err)
	}
	return records, nil
}

// WriteFeed writes the stored records as a portal feed.
func (e *Exporter) WriteFeed(ctx context.Context, w io.Writer) (int, error) {
	records, err := e.Export(ctx)
	if err != nil {
		return 0, err
	}
	for _, r := range records {
		if _, err := io.WriteString(w, r.Record); err != nil {
			return 0, fmt.Errorf("io.WriteString(line %d) > %w", r.Line, err)
		}
	}
	return len(records), nil
}

// WriteYAML writes the stored records as a YAML list.
func (e *Exporter) WriteYAML(ctx context.Context, w io.Writer) (int, error) {
	records, err := e.Export(ctx)
	if err != nil {
		return 0, err
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return 0, fmt.Errorf("encoder.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return 0, fmt.Errorf("encoder.Close() > %w", err)
	}
	return len(records), nil
}
