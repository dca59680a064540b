// Package assets holds the embedded document templates. Every template can be
// overridden by a file on disk; a file that is missing or does not parse falls
// back to the embedded version.
package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// embeddedTemplate describes one embedded template.
type embeddedTemplate struct {
	name     string
	fallback string
	// delims replaces the default action delimiters when set. LaTeX sources
	// use << >> because {{ is common in TeX.
	delims [2]string
}

func (s embeddedTemplate) newTemplate(name string) *template.Template {
	tmpl := template.New(name).Funcs(template.FuncMap{
		"join": strings.Join,
	})
	if s.delims[0] != "" {
		tmpl = tmpl.Delims(s.delims[0], s.delims[1])
	}
	return tmpl
}

func parseTemplateWithFallback(templatePath string, def embeddedTemplate, logger *slog.Logger) (*template.Template, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// First, try to read from the filesystem
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := def.newTemplate(filepath.Base(templatePath)).ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			logger.Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := def.newTemplate(def.name).Parse(def.fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template %s: %w", def.name, err)
	}
	return tmpl, nil
}
