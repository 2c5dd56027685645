package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pushJSON bool

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Sync every pending message to its repository",
	Long: `Write every message that has a repository but no recorded hash to
GitHub. Messages that fail are reported and left pending for the next push.`,
	Args: cobra.NoArgs,
	RunE: runPush,
}

func init() {
	rootCmd.AddCommand(pushCmd)
	pushCmd.Flags().BoolVar(&pushJSON, "json", false, "Output as JSON")
}

func runPush(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	defer a.Close()

	report, err := a.syncer.SyncAllPending(cmd.Context())

	if pushJSON {
		if jerr := outputJSON(report); jerr != nil {
			return jerr
		}

		return err
	}

	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if report.Pending == 0 {
		_, _ = fmt.Fprintln(os.Stdout, dimStyle.Render("Nothing to push."))
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s %d synced", okStyle.Render("✓"), report.Synced)
	_, _ = fmt.Fprintf(os.Stdout, ", %s", dimStyle.Render(fmt.Sprintf("%d skipped", report.Skipped)))

	if report.Failed > 0 {
		_, _ = fmt.Fprintf(os.Stdout, ", %s", errStyle.Render(fmt.Sprintf("%d failed", report.Failed)))
	}

	_, _ = fmt.Fprintf(os.Stdout, " (of %d pending)\n", report.Pending)

	return nil
}
