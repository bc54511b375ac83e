package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"navmend.dev/pkg/navmend/internal/controller"
	"navmend.dev/pkg/navmend/internal/domain"
)

var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List HTML files and whether they carry a navigation block",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := controller.OutputFormat(listFormatFlag)
			if format != controller.FormatTable && format != controller.FormatYAML {
				return fmt.Errorf("unsupported format %q (want %s or %s)", listFormatFlag, controller.FormatTable, controller.FormatYAML)
			}

			return newWorkflow(cmd).List(cmd.Context(), domain.ListArgs{
				DiscoverArgs: discoverArgs(args),
				Format:       format,
			})
		},
	}

	cmd.Flags().StringVarP(&listFormatFlag, formatFlagName, "f", string(controller.FormatTable), "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
