// Package audio locates the recordings referenced by dictionary entries and
// writes a shell script that copies them into the app's audio directory.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/mvzaanen/N-uu-conversion/internal/dictionary"
	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

const recordingExtension = ".wav"

// Status is the outcome of resolving one recording.
type Status int

const (
	// Found means exactly one file, or several identical files, matched.
	Found Status = iota
	// Missing means no file matched.
	Missing
	// Conflict means several files with different contents matched.
	Conflict
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Missing:
		return "missing"
	case Conflict:
		return "conflict"
	}
	panic(fmt.Sprintf("audio: unknown status %d", int(s)))
}

// Resolution is the result of looking up one recording stem.
type Resolution struct {
	Stem   string
	Status Status
	// Matches are all matching files in walk order. The first one is copied.
	Matches []string
}

// Resolver searches a directory tree for recordings.
type Resolver struct {
	fs     afero.Fs
	base   string
	logger *slog.Logger

	once    sync.Once
	byName  map[string][]string
	scanErr error
}

type Option func(*Resolver)

// WithFs searches fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) {
		r.fs = fs
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver returns a Resolver for the recordings below base.
func NewResolver(base string, opts ...Option) *Resolver {
	r := &Resolver{
		fs:     afero.NewOsFs(),
		base:   base,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// scan indexes every file below base by lower-cased file name.
func (r *Resolver) scan() error {
	r.once.Do(func() {
		r.byName = map[string][]string{}
		r.scanErr = afero.Walk(r.fs, r.base, func(p string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			name := strings.ToLower(info.Name())
			r.byName[name] = append(r.byName[name], filepath.ToSlash(p))
			return nil
		})
		if r.scanErr == nil {
			r.logger.Debug("scanned recordings", "base", r.base, "names", len(r.byName))
		}
	})
	return r.scanErr
}

// Resolve finds the files for stem, with or without the .wav extension and
// ignoring case.
func (r *Resolver) Resolve(stem string) (Resolution, error) {
	if err := r.scan(); err != nil {
		return Resolution{}, fmt.Errorf("afero.Walk(%s) > %w", r.base, err)
	}
	if strings.Contains(stem, ".") {
		r.logger.Error("recording name contains a period", "stem", stem)
	}

	lower := strings.ToLower(stem)
	var matches []string
	matches = append(matches, r.byName[lower+recordingExtension]...)
	matches = append(matches, r.byName[lower]...)

	resolution := Resolution{Stem: stem, Matches: matches}
	switch len(matches) {
	case 0:
		resolution.Status = Missing
		r.logger.Warn("did not find recording", "stem", stem)
	case 1:
		resolution.Status = Found
	default:
		r.logger.Warn("found multiple recordings", "stem", stem, "files", len(matches))
		same, err := r.identical(matches)
		if err != nil {
			return Resolution{}, err
		}
		if same {
			resolution.Status = Found
		} else {
			resolution.Status = Conflict
			r.logger.Error("found multiple different recordings", "stem", stem, "files", strings.Join(matches, ", "))
		}
	}
	return resolution, nil
}

func (r *Resolver) identical(files []string) (bool, error) {
	first, err := afero.ReadFile(r.fs, files[0])
	if err != nil {
		return false, fmt.Errorf("afero.ReadFile(%s) > %w", files[0], err)
	}
	for _, f := range files[1:] {
		contents, err := afero.ReadFile(r.fs, f)
		if err != nil {
			return false, fmt.Errorf("afero.ReadFile(%s) > %w", f, err)
		}
		if !bytes.Equal(first, contents) {
			return false, nil
		}
	}
	return true, nil
}

// Summary counts the outcomes of a copy script.
type Summary struct {
	Entries          int `yaml:"entries"`
	WithoutRecording int `yaml:"without_recording"`
	Copies           int `yaml:"copies"`
	Missing          int `yaml:"missing"`
	Conflicts        int `yaml:"conflicts"`
}

// WriteScript writes a shell script copying the recording of every entry of
// ix into target, in entry order. Recordings that cannot be copied are left
// as comments.
func (r *Resolver) WriteScript(w io.Writer, ix *dictionary.Index, target string) (Summary, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "mkdir -p %s\n", quote(target))

	summary := Summary{}
	for _, entry := range ix.Entries() {
		summary.Entries++
		word := headwordsOf(entry)
		if len(entry.AudioRefs) == 0 {
			summary.WithoutRecording++
			fmt.Fprintf(&b, "# %s does not have dictionary recording\n", word)
			continue
		}
		fmt.Fprintf(&b, "# %s\n", word)
		for _, stem := range entry.AudioRefs {
			resolution, err := r.Resolve(stem)
			if err != nil {
				return summary, fmt.Errorf("Resolve(line %d) > %w", entry.SourceLine, err)
			}
			switch resolution.Status {
			case Found:
				summary.Copies++
				fmt.Fprintf(&b, "cp %s %s\n", quote(resolution.Matches[0]), quote(path.Join(target, stem+recordingExtension)))
			case Missing:
				summary.Missing++
				fmt.Fprintf(&b, "# Did not find %s\n", stem)
			case Conflict:
				summary.Conflicts++
				fmt.Fprintf(&b, "# Found multiple different %s\n", stem)
			}
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return summary, fmt.Errorf("io.WriteString() > %w", err)
	}
	return summary, nil
}

func headwordsOf(entry lexicon.Entry) string {
	words := make([]string, 0, len(entry.Headwords[lexicon.Target]))
	for _, h := range entry.Headwords[lexicon.Target] {
		words = append(words, h.Display())
	}
	return strings.Join(words, "; ")
}

var shellEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "`", "\\`")

// quote wraps s in double quotes for the shell.
func quote(s string) string {
	return `"` + shellEscaper.Replace(s) + `"`
}
