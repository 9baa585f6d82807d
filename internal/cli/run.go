package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"budget-scheduler/internal/adapter/usecase"
	"budget-scheduler/internal/config/policy"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		dryRun bool
		at     string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one reconcile pass and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
				now = t
			}

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

			rec := usecase.NewBudgetReconciler(platform, store, policy.NewStatic(pol), a.logger,
				usecase.WithConcurrency(a.cfg.Scheduler.Concurrency),
				usecase.WithDryRun(dryRun),
			)
			rep, err := rec.Reconcile(cmd.Context(), now)
			if rep != nil {
				printReport(cmd.OutOrStdout(), rep)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "simulate budget updates regardless of the policy")
	cmd.Flags().StringVar(&at, "at", "", "evaluate the schedule at this RFC3339 instant instead of now")
	return cmd
}
