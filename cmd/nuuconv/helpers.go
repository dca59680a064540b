package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mvzaanen/N-uu-conversion/internal/config"
	"github.com/mvzaanen/N-uu-conversion/internal/dictionary"
	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
	"github.com/mvzaanen/N-uu-conversion/internal/sheet"
)

// stdoutPath selects standard output as an output file.
const stdoutPath = "-"

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func columnsFromConfig(c config.ColumnsConfig) dictionary.Columns {
	return dictionary.Columns{
		Headwords: map[lexicon.Language]string{
			lexicon.Nuu:            c.Nuu,
			lexicon.IPA:            c.IPA,
			lexicon.Nama:           c.Nama,
			lexicon.Afrikaans:      c.Afrikaans,
			lexicon.AfrikaansLocal: c.AfrikaansLocal,
			lexicon.English:        c.English,
		},
		POS: c.POS,
		Annotations: map[lexicon.Language]string{
			lexicon.Nama:      c.NamaAnnotation,
			lexicon.Afrikaans: c.AfrikaansAnnotation,
			lexicon.English:   c.EnglishAnnotation,
		},
		Audio: c.Audio,
	}
}

// loadIndex builds the dictionary from input, or from the configured input
// when input is empty.
func loadIndex(cfg *config.Config, input string, logger *slog.Logger) (*dictionary.Index, string, error) {
	if input == "" {
		input = cfg.Input.Path
	}
	file, err := sheet.NewFile(input)
	if err != nil {
		return nil, input, fmt.Errorf("sheet.NewFile() > %w", err)
	}

	ix := dictionary.New(
		dictionary.WithLogger(logger),
		dictionary.WithColumns(columnsFromConfig(cfg.Columns)),
		dictionary.WithFirstLine(cfg.Input.FirstLine),
	)
	if err := ix.Load(file); err != nil {
		return nil, input, fmt.Errorf("ix.Load() > %w", err)
	}
	stats := ix.Stats()
	logger.Info("loaded dictionary",
		"input", input,
		"entries", stats.Entries,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"warnings", stats.Warnings,
	)
	return ix, input, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// createOutput creates path and its parent directories. stdoutPath returns
// stdout.
func createOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == stdoutPath {
		return nopWriteCloser{stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	return f, nil
}

// writeOutput calls write with the output at path and closes it.
func writeOutput(path string, stdout io.Writer, write func(w io.Writer) error) (err error) {
	out, err := createOutput(path, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("Close(%s) > %w", path, closeErr)
		}
	}()
	return write(out)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
