package cli

import (
	"github.com/spf13/cobra"

	"budget-scheduler/internal/adapter/usecase"
	"budget-scheduler/internal/config/policy"
)

func newEntitiesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List active budget entities without changing them",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			pol, err := policy.Load(a.cfg.PolicyPath)
			if err != nil {
				return err
			}
			platform, err := a.platform()
			if err != nil {
				return err
			}
			store, err := a.stateStore(cmd.Context())
			if err != nil {
				return err
			}

			rec := usecase.NewBudgetReconciler(platform, store, policy.NewStatic(pol), a.logger)
			views, err := rec.Entities(cmd.Context())
			if err != nil {
				return err
			}
			printEntities(cmd.OutOrStdout(), views)
			return nil
		},
	}
}
