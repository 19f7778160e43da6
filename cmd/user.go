package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/mefrp-go/mefrp"
)

var (
	signCaptcha string
	logsFilter  mefrp.OperationLogFilter
)

// userCmd groups account commands
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Inspect the logged-in account",
}

var userInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show account details and quotas",
	Args:  cobra.NoArgs,
	RunE:  runUserInfo,
}

var userSignCmd = &cobra.Command{
	Use:   "sign",
	Short: "Perform the daily check-in",
	Args:  cobra.NoArgs,
	RunE:  runUserSign,
}

var userGroupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List membership groups and their limits",
	Args:  cobra.NoArgs,
	RunE:  runUserGroups,
}

var userLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the account operation log",
	Args:  cobra.NoArgs,
	RunE:  runUserLogs,
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userInfoCmd, userSignCmd, userGroupsCmd, userLogsCmd)

	userSignCmd.Flags().StringVar(&signCaptcha, "captcha", "", "captcha token")

	userLogsCmd.Flags().IntVar(&logsFilter.Page, "page", 1, "page number")
	userLogsCmd.Flags().IntVar(&logsFilter.PageSize, "page-size", 20, "entries per page")
	userLogsCmd.Flags().StringVar(&logsFilter.Category, "category", "", "only show this category")
	userLogsCmd.Flags().StringVar(&logsFilter.Status, "status", "", "only show this status")
}

func runUserInfo(cmd *cobra.Command, args []string) error {
	info, err := client.GetUserInfo(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get user info: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), cfg.Output.Format, info, func() tableView {
		status := "active"
		switch info.Status {
		case 1:
			status = "banned"
		case 2:
			status = "traffic exceeded"
		}
		return tableView{
			headers: []string{"Field", "Value"},
			rows: [][]string{
				{"User", fmt.Sprintf("%s (#%d)", info.Username, info.UserID)},
				{"Email", info.Email},
				{"Group", info.FriendlyGroup},
				{"Status", status},
				{"Proxies", fmt.Sprintf("%d / %d", info.UsedProxies, info.MaxProxies)},
				{"Traffic", strconv.FormatInt(info.Traffic, 10)},
				{"Bandwidth in/out", fmt.Sprintf("%d / %d", info.InBound, info.OutBound)},
				{"Verified", yesNo(info.IsRealname)},
				{"Signed today", yesNo(info.TodaySigned)},
				{"Registered", formatUnix(info.RegTime)},
			},
		}
	})
}

func runUserSign(cmd *cobra.Command, args []string) error {
	if err := client.Sign(cmd.Context(), signCaptcha); err != nil {
		return fmt.Errorf("sign failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Signed in for today")
	return nil
}

func runUserGroups(cmd *cobra.Command, args []string) error {
	groups, err := client.GetUserGroups(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get user groups: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), cfg.Output.Format, groups, func() tableView {
		view := tableView{
			headers: []string{"Group", "Name", "Max proxies", "Base traffic", "In", "Out"},
			aligns:  []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
		}
		for _, g := range groups {
			view.rows = append(view.rows, []string{
				g.Name,
				g.FriendlyName,
				strconv.Itoa(g.MaxProxies),
				strconv.FormatInt(g.BaseTraffic, 10),
				strconv.Itoa(g.InBound),
				strconv.Itoa(g.OutBound),
			})
		}
		return view
	})
}

func runUserLogs(cmd *cobra.Command, args []string) error {
	logs, err := client.GetOperationLogs(cmd.Context(), logsFilter)
	if err != nil {
		return fmt.Errorf("failed to get operation logs: %w", err)
	}

	err = writeOutput(cmd.OutOrStdout(), cfg.Output.Format, logs, func() tableView {
		view := tableView{headers: []string{"ID", "Time", "Category", "Status", "IP", "Details"}}
		for _, l := range logs.Data {
			view.rows = append(view.rows, []string{
				strconv.FormatInt(l.LogID, 10), l.CreatedAt, l.Category, l.Status, l.IPAddress, l.Details,
			})
		}
		return view
	})
	if err != nil {
		return err
	}

	if cfg.Output.Format == "table" {
		fmt.Fprintf(cmd.OutOrStdout(), "Page %d of %d (%d entries)\n", logs.Page, logs.TotalPages, logs.Total)
	}
	return nil
}
