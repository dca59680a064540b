package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mvzaanen/N-uu-conversion/internal/assets"
	"github.com/mvzaanen/N-uu-conversion/internal/config"
	"github.com/mvzaanen/N-uu-conversion/internal/latex"
	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
	"github.com/mvzaanen/N-uu-conversion/internal/portal"
)

// languageList is a comma separated list of languages, e.g. "nuu,english".
type languageList []lexicon.Language

func (l *languageList) Set(val string) error {
	for _, part := range strings.Split(val, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		lang, err := lexicon.ParseLanguage(part)
		if err != nil {
			return fmt.Errorf("invalid section: %w", err)
		}
		*l = append(*l, lang)
	}
	return nil
}

func (l languageList) String() string {
	keys := make([]string, len(l))
	for i, lang := range l {
		keys[i] = lang.Key()
	}
	return strings.Join(keys, ",")
}

func (l *languageList) Type() string {
	return "languages"
}

var _ pflag.Value = (*languageList)(nil)

func sectionsFromConfig(keys []string) (languageList, error) {
	var sections languageList
	for _, key := range keys {
		if err := sections.Set(key); err != nil {
			return nil, err
		}
	}
	return sections, nil
}

func newPortalRenderer(cfg *config.Config, logger *slog.Logger) *portal.Renderer {
	return portal.NewRenderer(
		portal.WithProject(cfg.Portal.Project),
		portal.WithLogger(logger),
	)
}

// newLatexRenderer returns the configured renderer. Non-empty sections
// override the configured ones.
func newLatexRenderer(cfg *config.Config, sections languageList, logger *slog.Logger) (*latex.Renderer, error) {
	if len(sections) == 0 {
		configured, err := sectionsFromConfig(cfg.Latex.Sections)
		if err != nil {
			return nil, err
		}
		sections = configured
	}
	opts := []latex.Option{
		latex.WithLogger(logger),
		latex.WithHeaderLength(cfg.Latex.HeaderLength),
		latex.WithPreambleTemplate(cfg.Latex.PreambleTemplate),
		latex.WithPreamble(assets.LatexPreamble{
			FontSize: cfg.Latex.FontSize,
			Paper:    cfg.Latex.Paper,
		}),
	}
	if len(sections) > 0 {
		opts = append(opts, latex.WithSections(sections...))
	}
	return latex.NewRenderer(opts...), nil
}
