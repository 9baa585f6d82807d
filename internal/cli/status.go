package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"budget-scheduler/internal/config/policy"
	"budget-scheduler/internal/core/domain"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the policy, the current mode and the stored state",
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
			decision, err := domain.ResolveMode(time.Now(), pol)
			if err != nil {
				return err
			}
			store, err := a.stateStore(cmd.Context())
			if err != nil {
				return err
			}
			st, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "policy:        %s\n", a.cfg.PolicyPath)
			fmt.Fprintf(w, "timezone:      %s\n", pol.Timezone)
			fmt.Fprintf(w, "nightly:       %s - %s at %s\n",
				pol.Schedule.NightlyTime, pol.Schedule.DaytimeTime, formatCents(pol.Budgets.NightlyAmountCents))
			if pol.RestoreStrategy() == domain.RestoreFixed {
				fmt.Fprintf(w, "restore:       fixed %s\n", formatCents(pol.Budgets.DaytimeAmountCents))
			} else {
				fmt.Fprintln(w, "restore:       original")
			}
			fmt.Fprintf(w, "excluded:      %d campaigns, %d ad sets\n", len(pol.ExcludedCampaignIDs), len(pol.ExcludedAdsetIDs))
			fmt.Fprintf(w, "dry run:       %t\n", pol.DryRun)
			fmt.Fprintf(w, "mode now:      %s (local %s)\n", decision.Mode, decision.LocalTime)
			fmt.Fprintf(w, "last mode:     %s\n", st.LastMode)
			if st.LastRunAt != nil {
				fmt.Fprintf(w, "last run:      %s\n", st.LastRunAt.In(decision.Location).Format(time.RFC3339))
			} else {
				fmt.Fprintln(w, "last run:      never")
			}
			fmt.Fprintf(w, "originals:     %d\n", len(st.OriginalBudgets))

			if len(st.OriginalBudgets) == 0 {
				return nil
			}
			ids := make([]string, 0, len(st.OriginalBudgets))
			for id := range st.OriginalBudgets {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tORIGINAL")
			for _, id := range ids {
				fmt.Fprintf(tw, "%s\t%s\n", id, formatCents(st.OriginalBudgets[id]))
			}
			return tw.Flush()
		},
	}
}
