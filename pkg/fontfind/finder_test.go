package fontfind_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/logandonley/fontfinder/internal/platform"
	"github.com/logandonley/fontfinder/pkg/fontfind"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Mock platform implementation for testing
type mockPlatform struct {
	fontDir   string
	recursive bool
}

func (m *mockPlatform) Name() string {
	return "mock"
}

func (m *mockPlatform) FontDirs(env platform.Env) []string {
	dirs := []string{
		filepath.Join(m.fontDir, "system"),
	}
	if env.Home != "" {
		dirs = append(dirs, filepath.Join(env.Home, "fonts"))
	}
	return dirs
}

func (m *mockPlatform) Recursive() bool {
	return m.recursive
}

var _ = Describe("Finder", func() {
	var (
		tempDir string
		mock    *mockPlatform
		logs    *bytes.Buffer
		logger  *slog.Logger
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "finder-test-*")
		Expect(err).NotTo(HaveOccurred())

		Expect(os.MkdirAll(filepath.Join(tempDir, "system"), 0755)).To(Succeed())
		Expect(os.MkdirAll(filepath.Join(tempDir, "home", "fonts"), 0755)).To(Succeed())

		mock = &mockPlatform{fontDir: tempDir, recursive: true}
		logs = new(bytes.Buffer)
		logger = slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	newFinder := func(opts ...fontfind.Option) *fontfind.Finder {
		base := []fontfind.Option{
			fontfind.WithPlatform(mock),
			fontfind.WithEnv(fontfind.Env{Home: filepath.Join(tempDir, "home")}),
			fontfind.WithLogger(logger),
		}
		return fontfind.New(append(base, opts...)...)
	}

	Describe("Candidate directories", func() {
		It("should list platform dirs in order", func() {
			Expect(newFinder().CandidateDirs()).To(Equal([]string{
				filepath.Join(tempDir, "system"),
				filepath.Join(tempDir, "home", "fonts"),
			}))
		})

		It("should drop environment paths with traversal", func() {
			finder := newFinder(fontfind.WithEnv(fontfind.Env{Home: tempDir + "/../elsewhere"}))

			Expect(finder.CandidateDirs()).To(Equal([]string{filepath.Join(tempDir, "system")}))
			Expect(logs.String()).To(ContainSubstring("ignoring invalid environment path"))
		})

		It("should validate the real platform layouts", func() {
			env := fontfind.Env{Home: "/home/../root", XDGDataHome: "/data", WinDir: "../Windows"}

			linux := fontfind.New(fontfind.WithPlatform(platform.ForOS("linux")), fontfind.WithEnv(env), fontfind.WithLogger(logger))
			Expect(linux.CandidateDirs()).To(Equal([]string{
				"/usr/share/fonts",
				"/usr/local/share/fonts",
				filepath.Join("/data", "fonts"),
			}))

			windows := fontfind.New(fontfind.WithPlatform(platform.ForOS("windows")), fontfind.WithEnv(env), fontfind.WithLogger(logger))
			Expect(windows.CandidateDirs()).To(Equal([]string{"C:/Windows/Fonts"}))
		})

		It("should put extra dirs first and skip invalid ones", func() {
			finder := newFinder(fontfind.WithExtraDirs("/opt/app/fonts", "../fonts", ""))

			Expect(finder.CandidateDirs()).To(Equal([]string{
				"/opt/app/fonts",
				filepath.Join(tempDir, "system"),
				filepath.Join(tempDir, "home", "fonts"),
			}))
		})

		It("should let roots replace the platform dirs", func() {
			finder := newFinder(fontfind.WithRoots("/a", "/b"), fontfind.WithExtraDirs("/c"))

			Expect(finder.CandidateDirs()).To(Equal([]string{"/a", "/b"}))
		})
	})

	Describe("Searching", func() {
		It("should return nothing when no candidate directory exists", func() {
			finder := newFinder(fontfind.WithRoots(
				filepath.Join(tempDir, "missing1"),
				filepath.Join(tempDir, "missing2"),
			))

			Expect(finder.FindFontWithGlyph("中")).To(BeEmpty())
		})

		It("should move past an empty directory", func() {
			want := writeFont(tempDir, "home", "fonts", "SourceHanSerif.otf")

			Expect(newFinder().FindFontWithGlyph("中")).To(Equal(want))
		})

		It("should stop at the first directory with a match", func() {
			want := writeFont(tempDir, "system", "NotoSansCJK.ttf")
			writeFont(tempDir, "home", "fonts", "wqy-zenhei.ttc")

			Expect(newFinder().FindFontWithGlyph("中")).To(Equal(want))
			Expect(logs.String()).To(ContainSubstring("found font"))
		})

		It("should prefer the matching font in a root", func() {
			writeFont(tempDir, "system", "Arial.ttf")
			writeFont(tempDir, "system", "NotoSansCJK.ttf")

			Expect(newFinder().FindFontWithGlyph("中")).To(HaveSuffix("NotoSansCJK.ttf"))
		})

		It("should limit depth per root", func() {
			parts := append([]string{"system"}, nestedDirs(3)...)
			writeFont(tempDir, append(parts, "NotoSansCJK.ttf")...)
			want := writeFont(tempDir, "home", "fonts", "a", "b", "msjh.ttc")

			Expect(newFinder(fontfind.WithMaxDepth(2)).FindFontWithGlyph("中")).To(Equal(want))
		})

		It("should only list roots flat on flat platforms", func() {
			mock.recursive = false
			writeFont(tempDir, "system", "sub", "NotoSansCJK.ttf")
			want := writeFont(tempDir, "home", "fonts", "simhei.ttf")

			Expect(newFinder().FindFontWithGlyph("中")).To(Equal(want))
		})

		It("should use a custom matcher", func() {
			writeFont(tempDir, "system", "NotoSansCJK.ttf")
			want := writeFont(tempDir, "home", "fonts", "Symbola.ttf")

			finder := newFinder(fontfind.WithMatcher(func(path, _ string) bool {
				return filepath.Base(path) == "Symbola.ttf"
			}))
			Expect(finder.FindFontWithGlyph("☃")).To(Equal(want))
		})

		It("should use custom keywords", func() {
			writeFont(tempDir, "system", "NotoSansCJK.ttf")
			want := writeFont(tempDir, "home", "fonts", "Symbola.ttf")

			Expect(newFinder(fontfind.WithKeywords("symbola")).FindFontWithGlyph("☃")).To(Equal(want))
		})

		It("should still apply the extension filter to custom matchers", func() {
			writeFont(tempDir, "system", "anything.pcf")

			finder := newFinder(fontfind.WithMatcher(func(string, string) bool { return true }))
			Expect(finder.FindFontWithGlyph("中")).To(BeEmpty())
		})

		It("should give the same answer to concurrent callers", func() {
			want := writeFont(tempDir, "home", "fonts", "ukai.ttc")
			finder := newFinder()

			var wg sync.WaitGroup
			results := make([]string, 8)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					defer GinkgoRecover()
					results[i] = finder.FindFontWithGlyph("中")
				}(i)
			}
			wg.Wait()

			for _, got := range results {
				Expect(got).To(Equal(want))
			}
		})
	})

	Describe("Explain", func() {
		It("should report each rule", func() {
			verdict := newFinder().Explain("/fonts/NotoSansCJK.ttf", "中")
			Expect(verdict.ValidPath).To(BeTrue())
			Expect(verdict.FontExtension).To(BeTrue())
			Expect(verdict.Glyph).To(BeTrue())
			Expect(verdict.Match()).To(BeTrue())
		})

		It("should not match without a keyword", func() {
			verdict := newFinder().Explain("/fonts/Arial.ttf", "中")
			Expect(verdict.FontExtension).To(BeTrue())
			Expect(verdict.Glyph).To(BeFalse())
			Expect(verdict.Match()).To(BeFalse())
		})

		It("should flag traversal paths", func() {
			Expect(newFinder().Explain("../noto.ttf", "中").ValidPath).To(BeFalse())
		})
	})
})
