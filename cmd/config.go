package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		shown := *cfg
		shown.Anthropic.Key = redact(shown.Anthropic.Key)
		shown.Jina.Key = redact(shown.Jina.Key)
		shown.Serper.Key = redact(shown.Serper.Key)

		out, err := yaml.Marshal(shown)
		if err != nil {
			return eris.Wrap(err, "marshal config")
		}
		cmd.Print(string(out))
		return nil
	},
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
