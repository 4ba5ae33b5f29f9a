package version

import (
	"fmt"

	"github.com/flarebyte/factorial/internal/buildinfo"
	"github.com/spf13/cobra"
)

// NewCmd returns the `version` subcommand. program is the name printed in
// front of the summary line.
func NewCmd(program string) *cobra.Command {
	var (
		flagShort bool
		flagJSON  bool
		flagYAML  bool
	)

	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Print the CLI version",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if flagShort || (!flagJSON && !flagYAML) {
				_, err := fmt.Fprintf(out, "%s %s\n", program, buildinfo.Summary())
				return err
			}

			// Structured output goes to stdout, the human line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s version: %s\n", program, buildinfo.Summary())
			info := buildinfo.Collect()
			if flagYAML {
				return encodeYAML(out, info)
			}
			return encodeJSON(out, info)
		},
	}

	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	cmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print detailed YAML version info")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
	return cmd
}
