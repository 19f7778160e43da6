package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// nodeCmd groups node commands
var nodeCmd = &cobra.Command{
	Use:     "node",
	Aliases: []string{"nodes"},
	Short:   "Inspect MEFrp nodes",
}

var nodeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List nodes available to the account",
	Args:  cobra.NoArgs,
	RunE:  runNodeList,
}

var nodeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show live node load and traffic",
	Args:  cobra.NoArgs,
	RunE:  runNodeStatus,
}

func init() {
	rootCmd.AddCommand(nodeCmd)
	nodeCmd.AddCommand(nodeListCmd, nodeStatusCmd)
}

func runNodeList(cmd *cobra.Command, args []string) error {
	nodes, err := client.GetNodeList(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), cfg.Output.Format, nodes, func() tableView {
		view := tableView{
			headers: []string{"ID", "Name", "Region", "Hostname", "Bandwidth", "Ports", "Types", "Online"},
			aligns:  []columnAlignment{alignRight},
		}
		for _, n := range nodes {
			view.rows = append(view.rows, []string{
				strconv.FormatInt(n.NodeID, 10),
				n.Name,
				n.Region,
				n.Hostname,
				n.Bandwidth,
				n.AllowPort,
				n.AllowType,
				yesNo(n.IsOnline && !n.IsDisabled),
			})
		}
		return view
	})
}

func runNodeStatus(cmd *cobra.Command, args []string) error {
	statuses, err := client.GetNodeStatus(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get node status: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), cfg.Output.Format, statuses, func() tableView {
		view := tableView{
			headers: []string{"ID", "Name", "Online", "Load", "Clients", "Proxies", "Conns", "Version"},
			aligns:  []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
		}
		for _, s := range statuses {
			view.rows = append(view.rows, []string{
				strconv.FormatInt(s.NodeID, 10),
				s.Name,
				yesNo(s.IsOnline),
				fmt.Sprintf("%d%%", s.LoadPercent),
				strconv.Itoa(s.OnlineClient),
				strconv.Itoa(s.OnlineProxy),
				strconv.Itoa(s.CurConns),
				s.Version,
			})
		}
		return view
	})
}
