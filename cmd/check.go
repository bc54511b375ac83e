package cmd

import (
	"github.com/spf13/cobra"

	"navmend.dev/pkg/navmend/internal/domain"
)

const checkLongDescription = `Audit the navigation template against its link table.

Reports relative links of the template that the table does not cover (they
are left unprefixed in subdirectories), table entries the template never uses,
and table entries that would be rewritten twice. The command fails when such a
collision exists; the root command refuses to run in that case as well.`

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Audit the navigation template and link table",
		Long:  checkLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := newWorkflow(cmd).Check(cmd.Context(), domain.CheckArgs{Nav: navArgs()})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
