package fontfind

import (
	"log/slog"

	"github.com/logandonley/fontfinder/internal/platform"
)

// Env holds the environment values that feed the candidate directories
type Env = platform.Env

// EnvFromOS reads WINDIR, HOME and XDG_DATA_HOME from the process environment
func EnvFromOS() Env {
	return platform.EnvFromOS()
}

// Finder looks for a font file that probably covers a character. A Finder is
// read-only after New and may be shared between goroutines.
type Finder struct {
	env      Env
	platform platform.Manager
	roots    []string
	extra    []string
	maxDepth int
	matcher  Matcher
	walker   Walker
	logger   *slog.Logger
}

// New creates a Finder for the running platform and process environment
func New(opts ...Option) *Finder {
	f := &Finder{
		env:      EnvFromOS(),
		platform: platform.New(),
		maxDepth: MaxSearchDepth,
		matcher:  defaultMatcher,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = slog.Default()
	}
	if f.walker == nil {
		if f.platform.Recursive() {
			f.walker = RecursiveWalker{MaxDepth: f.maxDepth, Logger: f.logger}
		} else {
			f.walker = FlatWalker{Logger: f.logger}
		}
	}

	return f
}

// FindFontWithGlyph searches the default font directories of the running
// platform and returns the first font file that probably contains testChar,
// or "" if there is none.
func FindFontWithGlyph(testChar string) string {
	return New().FindFontWithGlyph(testChar)
}

// FindFontWithGlyph returns the first matching font file across the
// candidate directories, or "".
func (f *Finder) FindFontWithGlyph(testChar string) string {
	match := fontMatch(f.matcher, testChar)
	for _, dir := range f.CandidateDirs() {
		if found := f.walker.Walk(dir, match); found != "" {
			f.logger.Debug("found font", "path", found, "root", dir)
			return found
		}
	}

	f.logger.Debug("no font found", "char", testChar, "platform", f.platform.Name())
	return ""
}

// CandidateDirs returns the directories FindFontWithGlyph searches, in order
func (f *Finder) CandidateDirs() []string {
	if f.roots != nil {
		return f.validDirs(f.roots)
	}

	dirs := f.validDirs(f.extra)
	return append(dirs, f.platform.FontDirs(f.validEnv())...)
}

func (f *Finder) validDirs(dirs []string) []string {
	valid := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if !IsValidPath(dir) {
			f.logger.Debug("ignoring invalid font directory", "dir", dir)
			continue
		}
		valid = append(valid, dir)
	}
	return valid
}

// validEnv blanks every value that fails IsValidPath so the platform skips it
func (f *Finder) validEnv() Env {
	env := f.env
	for name, value := range map[string]*string{
		"WINDIR":        &env.WinDir,
		"HOME":          &env.Home,
		"XDG_DATA_HOME": &env.XDGDataHome,
	} {
		if *value != "" && !IsValidPath(*value) {
			f.logger.Debug("ignoring invalid environment path", "name", name, "value", *value)
			*value = ""
		}
	}
	return env
}

// Verdict explains how a single file fares against the search rules
type Verdict struct {
	Path          string `yaml:"path"`
	ValidPath     bool   `yaml:"valid_path"`
	FontExtension bool   `yaml:"font_extension"`
	Glyph         bool   `yaml:"glyph"`
}

// Match reports whether the file would be returned by a search
func (v Verdict) Match() bool {
	return v.FontExtension && v.Glyph
}

// Explain applies the extension filter and the Finder's glyph heuristic to path
func (f *Finder) Explain(path, testChar string) Verdict {
	return Verdict{
		Path:          path,
		ValidPath:     IsValidPath(path),
		FontExtension: HasFontExtension(path),
		Glyph:         f.matcher(path, testChar),
	}
}
