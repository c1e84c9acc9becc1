package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dailies/pkg/dailies"
)

const modulePath = "github.com/mesh-intelligence/dailies"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dailies version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "dailies v%s\nmodule: %s\ncommit: %s\n", dailies.Version, modulePath, dailies.Commit)
			return nil
		},
	}
}
