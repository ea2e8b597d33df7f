package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bjaus/richfmt"
	"github.com/bjaus/richfmt/internal/config"
	"github.com/bjaus/richfmt/internal/logging"
	"github.com/bjaus/richfmt/internal/values"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	valuesPath string
	stylePath  string
	output     string
	sets       []string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render FORMAT",
		Short: "Render a format string",
		Example: `  richfmt render 'Hello #{{name|there}}' --set name=Jill
  richfmt render '#{{user}} commented#{{comment|| "|"}}' --values values.yaml -o html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			if opts.valuesPath == "" {
				opts.valuesPath = cfg.Values
			}
			if opts.stylePath == "" {
				opts.stylePath = cfg.StyleFile
			}
			if opts.output == "" {
				opts.output = cfg.Output
			}
			return runRender(cmd.OutOrStdout(), args[0], cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.valuesPath, "values", "", "Values file (.yaml, .toml or .json)")
	cmd.Flags().StringVar(&opts.stylePath, "style", "", "Base style file (.yaml, .toml or .json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output format: auto, plain, ansi, html, markdown, json, jsonl, yaml, table, csv, tsv")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Set a value as key=value (repeatable)")

	return cmd
}

func runRender(out io.Writer, format string, cfg config.Config, opts *renderOptions) error {
	logger := logging.GetLogger("render")

	tmpl, err := richfmt.Compile(format)
	if err != nil {
		return err
	}

	mapping := map[string]any{}
	if opts.valuesPath != "" {
		loaded, err := values.Load(opts.valuesPath)
		if err != nil {
			return err
		}
		logger.Info().Str("path", opts.valuesPath).Int("count", len(loaded)).Msg("Loaded values")
		mapping = loaded
	}
	sets, err := values.ParseAssignments(opts.sets)
	if err != nil {
		return err
	}
	mapping = values.Merge(mapping, sets)

	base := richfmt.Style(cfg.Style)
	if opts.stylePath != "" {
		style, err := values.LoadStyle(opts.stylePath)
		if err != nil {
			return err
		}
		logger.Info().Str("path", opts.stylePath).Msg("Loaded base style")
		base = base.Merge(style)
	}

	f, renderer, err := selectFormat(opts.output, out)
	if err != nil {
		return err
	}

	rt, err := tmpl.Render(func(key string) (richfmt.Value, error) {
		v, ok := mapping[key]
		if !ok {
			logger.Debug().Str("key", key).Msg("No value, using default")
			return richfmt.Absent, nil
		}
		return richfmt.ValueOf(v), nil
	}, base)
	if err != nil {
		return err
	}

	logger.Debug().Str("format", f.String()).Int("runs", len(rt.Runs())).Msg("Writing output")
	if renderer != nil {
		return richfmt.WriteANSI(out, renderer, rt)
	}
	return richfmt.Write(out, f, rt)
}

// selectFormat resolves the output flag. "auto" picks ANSI when out is a
// color terminal and NO_COLOR is unset, and plain text otherwise. The
// renderer is non-nil only when auto detection picked ANSI for out.
func selectFormat(name string, out io.Writer) (richfmt.Format, *lipgloss.Renderer, error) {
	if name != "" && name != config.OutputAuto {
		f, err := richfmt.ParseFormat(name)
		return f, nil, err
	}
	if os.Getenv("NO_COLOR") != "" {
		return richfmt.Plain, nil, nil
	}
	file, ok := out.(*os.File)
	if !ok || (!isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd())) {
		return richfmt.Plain, nil, nil
	}
	if termenv.NewOutput(file).ColorProfile() == termenv.Ascii {
		return richfmt.Plain, nil, nil
	}
	return richfmt.ANSI, lipgloss.NewRenderer(file), nil
}

func printLines(out io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
