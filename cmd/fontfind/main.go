package main

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/logandonley/fontfinder/internal/config"
	"github.com/logandonley/fontfinder/pkg/fontfind"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what the subcommands share once flags have been parsed
type app struct {
	configFile string
	finder     *fontfind.Finder
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fontfind",
		Short: "fontfind locates a system font for a character",
		Long: `Locate an installed font file that probably contains a character.
Fonts are picked by file name, so the answer is a good guess rather than
a guarantee.

Examples:
  # Find a font for a CJK character
  fontfind find 中

  # Search an application font directory first
  fontfind find --dir ~/myapp/fonts 中

  # Show where fontfind looks
  fontfind dirs`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Path to a fontfind.yaml config file")
	flags.StringSlice("dir", nil, "Extra font directory to search first (repeatable)")
	flags.Int("max-depth", fontfind.MaxSearchDepth, "Maximum directory depth searched below each root")
	flags.StringSlice("keyword", nil, "File name keyword replacing the built-in list (repeatable)")
	flags.String("log-level", "error", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newFindCmd(a))
	rootCmd.AddCommand(newDirsCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	a.finder = fontfind.New(
		fontfind.WithExtraDirs(cfg.Search.Dirs...),
		fontfind.WithMaxDepth(cfg.Search.MaxDepth),
		fontfind.WithKeywords(cfg.Search.Keywords...),
	)
	return nil
}

func newFindCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <char>",
		Short: "Print the path of a font that probably contains a character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			char := norm.NFC.String(args[0])
			if char == "" {
				return fmt.Errorf("character must not be empty")
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			out := cmd.OutOrStdout()
			if verbose {
				for _, r := range char {
					fmt.Fprintf(out, "U+%04X %s\n", r, runeName(r))
				}
			}

			path := a.finder.FindFontWithGlyph(char)
			if path == "" {
				return fmt.Errorf("no font found for %q", char)
			}
			fmt.Fprintln(out, path)
			return nil
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Describe the character before searching")
	return cmd
}

type dirStatus struct {
	Path   string `yaml:"path"`
	Exists bool   `yaml:"exists"`
}

func newDirsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirs",
		Short: "List the candidate font directories in search order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dirs []dirStatus
			for _, dir := range a.finder.CandidateDirs() {
				info, err := os.Stat(dir)
				dirs = append(dirs, dirStatus{Path: dir, Exists: err == nil && info.IsDir()})
			}

			output, _ := cmd.Flags().GetString("output")
			out := cmd.OutOrStdout()
			switch output {
			case "yaml":
				return encodeYAML(cmd, dirs)
			case "text":
				fmt.Fprintln(out, "Candidate font directories:")
				for _, dir := range dirs {
					if dir.Exists {
						fmt.Fprintf(out, "  - %s\n", dir.Path)
					} else {
						fmt.Fprintf(out, "  - %s (missing)\n", dir.Path)
					}
				}
				return nil
			}
			return fmt.Errorf("unknown output format %q", output)
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text, yaml)")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path> [char]",
		Short: "Explain whether a font file would be picked",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			char := ""
			if len(args) > 1 {
				char = norm.NFC.String(args[1])
			}
			verdict := a.finder.Explain(args[0], char)

			output, _ := cmd.Flags().GetString("output")
			out := cmd.OutOrStdout()
			switch output {
			case "yaml":
				if err := encodeYAML(cmd, verdict); err != nil {
					return err
				}
			case "text":
				fmt.Fprintf(out, "%s\n", verdict.Path)
				fmt.Fprintf(out, "  valid path:     %t\n", verdict.ValidPath)
				fmt.Fprintf(out, "  font extension: %t\n", verdict.FontExtension)
				fmt.Fprintf(out, "  name keyword:   %t\n", verdict.Glyph)
			default:
				return fmt.Errorf("unknown output format %q", output)
			}

			if !verdict.Match() {
				return fmt.Errorf("%s would not be picked", verdict.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text, yaml)")
	return cmd
}

func encodeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func runeName(r rune) string {
	if r == utf8.RuneError {
		return "invalid UTF-8"
	}
	if name := runenames.Name(r); name != "" {
		return name
	}
	return "unnamed"
}
