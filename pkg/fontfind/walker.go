package fontfind

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// MaxSearchDepth is the default number of directory levels searched below a
// root.
const MaxSearchDepth = 10

// readBatch is the number of directory entries read per call. Entries are
// consumed in directory order, without sorting.
const readBatch = 64

// Walker searches a directory for the first file accepted by match and
// returns its path, or "" if there is none.
type Walker interface {
	Walk(root string, match func(path string) bool) string
}

// RecursiveWalker searches a directory tree by hand. It never follows
// symbolic links and stops descending once MaxDepth levels below the root
// have been read.
type RecursiveWalker struct {
	MaxDepth int
	Logger   *slog.Logger
}

// NewRecursiveWalker returns a RecursiveWalker limited to maxDepth levels
func NewRecursiveWalker(maxDepth int) RecursiveWalker {
	return RecursiveWalker{MaxDepth: maxDepth}
}

func (w RecursiveWalker) Walk(root string, match func(path string) bool) string {
	return w.search(root, 0, match)
}

func (w RecursiveWalker) search(dir string, depth int, match func(path string) bool) string {
	if depth > w.MaxDepth || dir == "" {
		return ""
	}

	d, err := os.Open(dir)
	if err != nil {
		logger(w.Logger).Debug("skipping font directory", "dir", dir, "error", err)
		return ""
	}
	defer d.Close()

	for {
		entries, err := d.ReadDir(readBatch)
		for _, entry := range entries {
			name := entry.Name()
			if name == "." || name == ".." {
				continue
			}

			path := filepath.Join(dir, name)
			switch mode := entry.Type(); {
			case mode&fs.ModeSymlink != 0:
				// never traversed or tested
			case mode.IsDir():
				if found := w.search(path, depth+1, match); found != "" {
					return found
				}
			case mode.IsRegular():
				if match(path) {
					return path
				}
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger(w.Logger).Debug("reading font directory", "dir", dir, "error", err)
			}
			return ""
		}
	}
}

// FlatWalker only looks at the regular files directly inside the root.
type FlatWalker struct {
	Logger *slog.Logger
}

func (w FlatWalker) Walk(root string, match func(path string) bool) string {
	d, err := os.Open(root)
	if err != nil {
		logger(w.Logger).Debug("skipping font directory", "dir", root, "error", err)
		return ""
	}
	defer d.Close()

	for {
		entries, err := d.ReadDir(readBatch)
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			if path := filepath.Join(root, entry.Name()); match(path) {
				return path
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger(w.Logger).Debug("reading font directory", "dir", root, "error", err)
			}
			return ""
		}
	}
}

// SearchDirForFont searches dir and its subdirectories, up to maxDepth levels
// down, for a font file that passes the extension filter and FontHasGlyph.
func SearchDirForFont(dir, testChar string, maxDepth int) string {
	return NewRecursiveWalker(maxDepth).Walk(dir, fontMatch(defaultMatcher, testChar))
}

func fontMatch(matcher Matcher, testChar string) func(path string) bool {
	return func(path string) bool {
		return HasFontExtension(path) && matcher(path, testChar)
	}
}

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

var (
	_ Walker = RecursiveWalker{}
	_ Walker = FlatWalker{}
)
