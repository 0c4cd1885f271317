package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

func (a *app) newRulesCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the available rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = a.cfg.Output
			}
			format, err := parseOutput(output)
			if err != nil {
				return err
			}

			rules := input.Rules()
			infos := make([]ruleInfo, 0, len(rules))
			for _, r := range rules {
				infos = append(infos, ruleInfo{Name: string(r), AcceptsLimit: r.AcceptsLimit()})
			}
			return renderRules(cmd.OutOrStdout(), format, infos)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json, yaml (default from INPUTKIT_OUTPUT)")
	return cmd
}
