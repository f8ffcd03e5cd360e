package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cliffjones/neologizer/pkg/config"
	"github.com/cliffjones/neologizer/pkg/generator"
	"github.com/cliffjones/neologizer/pkg/neologizer"
	"github.com/cliffjones/neologizer/pkg/present"
	"github.com/cliffjones/neologizer/pkg/stemfilter"
)

func newRunCmd(a *app, mode neologizer.Mode) *cobra.Command {
	short := "Print new words learned from a text"
	if mode == neologizer.ModeConvert {
		short = "Print a text with every word replaced by a new one"
	}

	cmd := &cobra.Command{
		Use:   string(mode) + " [file]",
		Short: short,
		Long: short + `.

The source text is read from file, or from standard input when no file is
given or file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(cmd, a.cfg.Generator, mode)
			if err != nil {
				return err
			}

			formatName, _ := cmd.Flags().GetString("format")
			format, err := present.ParseFormat(formatName)
			if err != nil {
				return err
			}

			in, closeInput, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeInput()

			svc := neologizer.New(
				neologizer.WithLogger(a.log),
				neologizer.WithMaxInputLength(a.cfg.MaxInputLength),
			)
			return svc.Pipe(cmd.Context(),
				neologizer.ReaderInput{Reader: in},
				neologizer.WriterOutput{Writer: cmd.OutOrStdout()},
				req,
				present.New(format),
			)
		},
	}

	f := cmd.Flags()
	f.Int("max-passes", generator.DefaultMaxPasses, "Number of random walks to attempt")
	f.Int("max-word-length", generator.DefaultMaxWordLength, "Longest walk kept, in letters plus the end marker")
	f.Int("max-word-count", generator.DefaultMaxWordCount, "Stop after this many words, negative for no limit")
	f.String("selection", string(generator.SelectionIndexed), "Transition picking: indexed or shuffle")
	f.Int64("seed", 0, "Random seed for reproducible output")
	f.String("format", string(present.FormatText), "Output format: text, list or html")
	f.String("profile", "", "YAML file with generator settings")
	f.String("stem-filter", "", "Drop words sharing a stem with a source word, for a language: "+strings.Join(stemfilter.Languages(), ", "))

	return cmd
}

// buildRequest layers the generator settings: environment, then the
// profile, then flags given on the command line.
func buildRequest(cmd *cobra.Command, base generator.Config, mode neologizer.Mode) (neologizer.Request, error) {
	f := cmd.Flags()
	cfg := base

	if profile, _ := f.GetString("profile"); profile != "" {
		if err := config.LoadYAML(profile, &cfg); err != nil {
			return neologizer.Request{}, err
		}
	}

	if f.Changed("max-passes") {
		cfg.MaxPasses, _ = f.GetInt("max-passes")
	}
	if f.Changed("max-word-length") {
		cfg.MaxWordLength, _ = f.GetInt("max-word-length")
	}
	if f.Changed("max-word-count") {
		cfg.MaxWordCount, _ = f.GetInt("max-word-count")
	}
	if f.Changed("selection") {
		s, _ := f.GetString("selection")
		cfg.Selection = generator.Selection(s)
	}

	cfg = cfg.Merge(generator.DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return neologizer.Request{}, err
	}

	req := neologizer.Request{Mode: mode, Config: cfg}
	if f.Changed("seed") {
		seed, _ := f.GetInt64("seed")
		req.Seed = &seed
	}
	req.StemLanguage, _ = f.GetString("stem-filter")

	return req, nil
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open source text: %w", err)
	}
	return f, func() { f.Close() }, nil
}
