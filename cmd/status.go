package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/mefrp-go/mefrp"
)

// serviceStatus is the combined result of the status command
type serviceStatus struct {
	System     *mefrp.SystemStatus `json:"system"`
	Statistics *mefrp.Statistics   `json:"statistics"`
	Notice     string              `json:"notice"`
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show service health, totals and the current notice",
	Long: `Fetch the system status, public statistics and the notice board in
parallel. Combine with --async to share one connection pool between them.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	system := mefrp.Go(ctx, client.GetSystemStatus)
	stats := mefrp.Go(ctx, client.GetStatistics)
	notice := mefrp.Go(ctx, client.GetNotice)

	var result serviceStatus
	var err error
	if result.System, err = system.Await(); err != nil {
		return fmt.Errorf("failed to get system status: %w", err)
	}
	if result.Statistics, err = stats.Await(); err != nil {
		return fmt.Errorf("failed to get statistics: %w", err)
	}
	if result.Notice, err = notice.Await(); err != nil {
		// The notice board is informational only.
		logger.Warn().Err(err).Msg("Failed to get notice")
	}

	return writeOutput(cmd.OutOrStdout(), cfg.Output.Format, result, func() tableView {
		state := "normal"
		switch result.System.Status {
		case 1:
			state = "degraded"
		case 2:
			state = "offline"
		}
		if result.System.Remark != "" {
			state += " (" + result.System.Remark + ")"
		}

		rows := [][]string{
			{"Status", state},
			{"Users", strconv.Itoa(result.Statistics.Users)},
			{"Nodes", strconv.Itoa(result.Statistics.Nodes)},
			{"Proxies", strconv.Itoa(result.Statistics.Proxies)},
			{"Traffic", strconv.FormatInt(result.Statistics.Traffic, 10)},
		}
		if result.Notice != "" {
			rows = append(rows, []string{"Notice", result.Notice})
		}
		return tableView{headers: []string{"Field", "Value"}, rows: rows}
	})
}
