package cli

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply PostgreSQL migrations for the postgres state driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()
			return a.migrate(cmd.Context())
		},
	}
}
