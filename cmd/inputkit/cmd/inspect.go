package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/logger"
)

func (a *app) newInspectCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect [value]",
		Short: "Show the result of every rule for a value",
		Example: `  inputkit inspect "<script>x</script> Hello & welcome"
  inputkit inspect --output yaml --source post "2016-01-01 20:20"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = a.cfg.Output
			}
			format, err := parseOutput(output)
			if err != nil {
				return err
			}

			v, err := a.readValue(cmd, args)
			if err != nil {
				return err
			}

			rep := buildReport(v)
			a.log.Debug("inspecting value", logger.Source(v.Source()), logger.Count(len(rep.Rules)))

			return renderReport(cmd.OutOrStdout(), format, rep)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json, yaml (default from INPUTKIT_OUTPUT)")
	return cmd
}
