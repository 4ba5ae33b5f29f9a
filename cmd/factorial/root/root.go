package root

import (
	"fmt"
	"io"

	"github.com/flarebyte/factorial/cmd/factorial/version"
	"github.com/flarebyte/factorial/internal/factorial"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. program is the name the binary was
// invoked as and appears in the usage and version lines.
func NewRootCmd(program string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   program + " N",
		Short: "Print the factorial of the integer N",
		Args:  cobra.ArbitraryArgs,
		// N may be negative, so "-3" must reach RunE untouched.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactorial(cmd.OutOrStdout(), program, args)
		},
	}

	// "help" is not an integer; it gets the usage error like any other word.
	cmd.SetHelpCommand(&cobra.Command{
		Use:                "help",
		Hidden:             true,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactorial(cmd.OutOrStdout(), program, []string{"help"})
		},
	})
	cmd.AddCommand(version.NewCmd(program))

	return cmd
}

// Execute runs the root command with the provided args and streams.
func Execute(program string, args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd := NewRootCmd(program)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runFactorial uses only the first argument; the rest are ignored.
func runFactorial(w io.Writer, program string, args []string) error {
	if len(args) == 0 {
		return &InvalidInvocationError{Program: program, Err: ErrMissingArgument}
	}
	n, err := factorial.ParseInput(args[0])
	if err != nil {
		return &InvalidInvocationError{Program: program, Err: err}
	}
	if _, err := fmt.Fprintln(w, factorial.Format(n, factorial.Compute(n))); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
