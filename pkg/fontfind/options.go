package fontfind

import (
	"log/slog"

	"github.com/logandonley/fontfinder/internal/platform"
)

// Option configures a Finder
type Option func(*Finder)

// WithEnv replaces the environment read from the process
func WithEnv(env Env) Option {
	return func(f *Finder) {
		f.env = env
	}
}

// WithPlatform selects the directory layout of another platform
func WithPlatform(m platform.Manager) Option {
	return func(f *Finder) {
		f.platform = m
	}
}

// WithRoots replaces the platform candidate directories with roots
func WithRoots(roots ...string) Option {
	return func(f *Finder) {
		f.roots = append([]string{}, roots...)
	}
}

// WithExtraDirs adds directories searched before the platform ones
func WithExtraDirs(dirs ...string) Option {
	return func(f *Finder) {
		f.extra = append(f.extra, dirs...)
	}
}

// WithMaxDepth sets the depth limit of the default recursive walker
func WithMaxDepth(depth int) Option {
	return func(f *Finder) {
		f.maxDepth = depth
	}
}

// WithMatcher replaces the glyph heuristic
func WithMatcher(m Matcher) Option {
	return func(f *Finder) {
		if m != nil {
			f.matcher = m
		}
	}
}

// WithKeywords replaces DefaultKeywords. An empty list keeps the defaults.
func WithKeywords(keywords ...string) Option {
	return func(f *Finder) {
		if len(keywords) > 0 {
			f.matcher = KeywordMatcher(keywords...)
		}
	}
}

// WithWalker replaces the platform's walker
func WithWalker(w Walker) Option {
	return func(f *Finder) {
		f.walker = w
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Finder) {
		f.logger = l
	}
}
