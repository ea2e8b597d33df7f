package cli

import (
	"github.com/bjaus/richfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys FORMAT",
		Short: "List the placeholder keys of a format string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := richfmt.Compile(args[0])
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), tmpl.Keys())
		},
	}
}

// segmentDoc is the YAML shape of a parsed segment.
type segmentDoc struct {
	Literal string `yaml:"literal,omitempty"`
	Key     string `yaml:"key,omitempty"`
	Default string `yaml:"default,omitempty"`
	Prefix  string `yaml:"prefix,omitempty"`
	Suffix  string `yaml:"suffix,omitempty"`
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FORMAT",
		Short: "Show how a format string is split into segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, err := richfmt.Parse(args[0])
			if err != nil {
				return err
			}
			docs := make([]segmentDoc, len(segments))
			for i, seg := range segments {
				switch s := seg.(type) {
				case richfmt.Literal:
					docs[i] = segmentDoc{Literal: s.Text}
				case richfmt.Placeholder:
					docs[i] = segmentDoc{Key: s.Key, Default: s.Default, Prefix: s.Prefix, Suffix: s.Suffix}
				}
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(docs); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
