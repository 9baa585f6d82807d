package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"budget-scheduler/internal/core/port"
)

// formatCents renders minor units as a decimal amount.
func formatCents(c int64) string {
	sign := ""
	if c < 0 {
		sign, c = "-", -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func printReport(w io.Writer, rep *port.Report) {
	fmt.Fprintf(w, "run %s: mode %s (was %s) at %s", rep.RunID, rep.Mode, rep.PreviousMode, rep.LocalTime)
	if rep.DryRun {
		fmt.Fprint(w, " [dry run]")
	}
	fmt.Fprintln(w)
	if !rep.Transitioned {
		fmt.Fprintf(w, "already in %s mode, nothing to do\n", rep.Mode)
		return
	}

	if len(rep.Outcomes) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KIND\tID\tNAME\tOLD\tNEW\tRESULT")
		for _, o := range rep.Outcomes {
			result := "ok"
			switch {
			case o.DryRun:
				result = "would update"
			case !o.Success:
				result = "failed: " + o.Error
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				o.Kind, o.ID, o.Name, formatCents(o.OldBudgetCents), formatCents(o.NewBudgetCents), result)
		}
		_ = tw.Flush()
	}
	for _, wn := range rep.Warnings {
		fmt.Fprintf(w, "warning: %s %s (%s): %s\n", wn.Kind, wn.ID, wn.Name, wn.Message)
	}
	fmt.Fprintf(w, "attempted %d, succeeded %d, failed %d\n", rep.Attempted, rep.Succeeded, rep.Failed)
}

func printEntities(w io.Writer, views []port.EntityView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tID\tNAME\tCAMPAIGN\tBUDGET\tORIGINAL\tEXCLUDED")
	for _, v := range views {
		orig := "-"
		if v.OriginalCents != nil {
			orig = formatCents(*v.OriginalCents)
		}
		excluded := ""
		if v.Excluded {
			excluded = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.Kind, v.ID, v.Name, v.CampaignName, formatCents(v.CurrentBudgetCents), orig, excluded)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d entities\n", len(views))
}
