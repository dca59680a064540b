package assets

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
)

//go:embed templates/latex-preamble.tex.go.tmpl
var fallbackLatexPreambleTemplate string

var latexPreamble = embeddedTemplate{
	name:     "latex-preamble.tex.go.tmpl",
	fallback: fallbackLatexPreambleTemplate,
	delims:   [2]string{"<<", ">>"},
}

// LatexFooter closes the typeset document.
const LatexFooter = "\\end{document}\n"

// LatexPreamble is the data of the preamble template.
type LatexPreamble struct {
	// FontSize is the document class size option, e.g. "10pt".
	FontSize string
	// Paper is the geometry paper name, e.g. "a4paper".
	Paper string
}

// DefaultLatexPreamble returns the settings of the printed dictionary.
func DefaultLatexPreamble() LatexPreamble {
	return LatexPreamble{FontSize: "10pt", Paper: "a4paper"}
}

// WriteLatexPreamble executes the preamble template at templatePath, or the
// embedded one, into output.
func WriteLatexPreamble(output io.Writer, templatePath string, data LatexPreamble, logger *slog.Logger) error {
	tmpl, err := parseTemplateWithFallback(templatePath, latexPreamble, logger)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
