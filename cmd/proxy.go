package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/mefrp-go/filter"
	"github.com/s0up4200/mefrp-go/mefrp"
)

var (
	filterExpr   string
	preset       string
	noConfirm    bool
	kickAll      bool
	configFormat string
)

// proxyCmd groups tunnel commands
var proxyCmd = &cobra.Command{
	Use:     "proxy",
	Aliases: []string{"proxies"},
	Short:   "List and manage proxies",
}

var proxyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List proxies, optionally filtered",
	Long: `List proxies owned by the account.

Use --filter with an expression such as 'online and proxyType == "tcp"' or
--preset with a name from filter.presets in the config file.`,
	Args: cobra.NoArgs,
	RunE: runProxyList,
}

var proxyDeleteCmd = &cobra.Command{
	Use:   "delete [proxy-id...]",
	Short: "Delete proxies by id or filter",
	RunE:  runProxyDelete,
}

var proxyKickCmd = &cobra.Command{
	Use:   "kick [proxy-id...]",
	Short: "Force proxies offline",
	RunE:  runProxyKick,
}

var proxyToggleCmd = &cobra.Command{
	Use:       "toggle <proxy-id> <on|off>",
	Short:     "Enable or disable a proxy",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"on", "off"},
	RunE:      runProxyToggle,
}

var proxyConfigCmd = &cobra.Command{
	Use:   "config <proxy-id...>",
	Short: "Print the frpc configuration for proxies",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProxyConfig,
}

func init() {
	rootCmd.AddCommand(proxyCmd)
	proxyCmd.AddCommand(proxyListCmd, proxyDeleteCmd, proxyKickCmd, proxyToggleCmd, proxyConfigCmd)

	for _, c := range []*cobra.Command{proxyListCmd, proxyDeleteCmd, proxyKickCmd} {
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
		c.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
		c.MarkFlagsMutuallyExclusive("filter", "preset")
	}

	proxyDeleteCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "skip confirmation prompt")
	proxyKickCmd.Flags().BoolVar(&kickAll, "all", false, "kick every proxy on the account")
	proxyConfigCmd.Flags().StringVar(&configFormat, "format", mefrp.FormatTOML, "config format: toml, json, yml or ini")
}

// newFilterManager builds a manager holding the configured presets
func newFilterManager() (*filter.Manager, error) {
	m := filter.NewManager()
	if err := m.RegisterPresets(cfg.Filter.Presets); err != nil {
		return nil, err
	}
	return m, nil
}

// selectProxies lists proxies and narrows them by --filter or --preset
func selectProxies(ctx context.Context) ([]filter.Subject, error) {
	list, err := client.GetProxyList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proxies: %w", err)
	}
	subjects := filter.Subjects(list)

	switch {
	case filterExpr != "":
		logger.Debug().Str("filter", filterExpr).Int("proxies", len(subjects)).Msg("Filtering proxies")
		m, err := newFilterManager()
		if err != nil {
			return nil, err
		}
		subjects, err = m.ApplyExpression(ctx, filterExpr, subjects)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
	case preset != "":
		logger.Debug().Str("preset", preset).Int("proxies", len(subjects)).Msg("Filtering proxies")
		m, err := newFilterManager()
		if err != nil {
			return nil, err
		}
		// Viper lowercases map keys.
		subjects, err = m.Apply(ctx, strings.ToLower(preset), subjects)
		if err != nil {
			if errors.Is(err, filter.ErrPresetNotFound) {
				return nil, fmt.Errorf("preset '%s' not found in config (have: %s)", preset, strings.Join(m.Names(), ", "))
			}
			return nil, err
		}
	}

	return subjects, nil
}

// resolveTargets returns proxy ids from args, or from the filter flags when
// no ids were given
func resolveTargets(ctx context.Context, args []string) ([]int64, error) {
	if len(args) > 0 {
		if filterExpr != "" || preset != "" {
			return nil, errors.New("pass either proxy ids or --filter/--preset, not both")
		}
		return parseIDs(args)
	}

	if filterExpr == "" && preset == "" {
		return nil, errors.New("no proxies specified: pass proxy ids or --filter/--preset")
	}

	subjects, err := selectProxies(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(subjects))
	for _, s := range subjects {
		ids = append(ids, s.Proxy.ProxyID)
	}
	return ids, nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid proxy id: %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runProxyList(cmd *cobra.Command, args []string) error {
	subjects, err := selectProxies(cmd.Context())
	if err != nil {
		return err
	}

	proxies := make([]mefrp.Proxy, 0, len(subjects))
	for _, s := range subjects {
		proxies = append(proxies, s.Proxy)
	}

	return writeOutput(cmd.OutOrStdout(), cfg.Output.Format, proxies, func() tableView {
		view := tableView{
			headers: []string{"ID", "Name", "Type", "Node", "Local", "Remote", "Online", "Disabled", "Last start"},
			aligns:  []columnAlignment{alignRight},
		}
		for _, s := range subjects {
			p := s.Proxy
			remote := strconv.Itoa(p.RemotePort)
			if p.Domain != "" {
				remote = p.Domain
			}
			node := s.Node.Name
			if node == "" {
				node = "#" + strconv.FormatInt(p.NodeID, 10)
			}
			view.rows = append(view.rows, []string{
				strconv.FormatInt(p.ProxyID, 10),
				p.ProxyName,
				p.ProxyType,
				node,
				fmt.Sprintf("%s:%d", p.LocalIP, p.LocalPort),
				remote,
				yesNo(p.IsOnline),
				yesNo(p.IsDisabled),
				formatUnix(p.LastStartTime),
			})
		}
		return view
	})
}

func runProxyDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ids, err := resolveTargets(ctx, args)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No proxies matched.")
		return nil
	}

	if !noConfirm {
		fmt.Fprintf(cmd.ErrOrStderr(), "Delete %d proxies (%s)? [y/N]: ", len(ids), joinIDs(ids))
		scanner := bufio.NewScanner(cmd.InOrStdin())
		if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}
	}

	result := runBatch(ctx, ids, client.DeleteProxy)
	return reportBatch(cmd, "Deleted", result)
}

func runProxyKick(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if kickAll {
		if len(args) > 0 || filterExpr != "" || preset != "" {
			return errors.New("--all cannot be combined with proxy ids or filters")
		}
		if err := client.KickAllProxies(ctx); err != nil {
			return fmt.Errorf("failed to kick proxies: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Kicked all proxies")
		return nil
	}

	ids, err := resolveTargets(ctx, args)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No proxies matched.")
		return nil
	}

	result := runBatch(ctx, ids, client.KickProxy)
	return reportBatch(cmd, "Kicked", result)
}

func runProxyToggle(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[:1])
	if err != nil {
		return err
	}

	var disabled bool
	switch strings.ToLower(args[1]) {
	case "on":
		disabled = false
	case "off":
		disabled = true
	default:
		return fmt.Errorf("invalid state %q (must be 'on' or 'off')", args[1])
	}

	if err := client.ToggleProxy(cmd.Context(), ids[0], disabled); err != nil {
		return fmt.Errorf("failed to toggle proxy %d: %w", ids[0], err)
	}

	state := "enabled"
	if disabled {
		state = "disabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Proxy %d %s\n", ids[0], state)
	return nil
}

func runProxyConfig(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	var conf *mefrp.ProxyConfig
	if len(ids) == 1 {
		conf, err = client.GetProxyConfig(cmd.Context(), ids[0], configFormat)
	} else {
		conf, err = client.GetMultipleProxyConfigs(cmd.Context(), ids, configFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to get proxy config: %w", err)
	}

	// The config text is already in the requested frpc format.
	if cfg.Output.Format == "table" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(conf.Config, "\n"))
		return err
	}
	return writeOutput(cmd.OutOrStdout(), cfg.Output.Format, conf, nil)
}

func reportBatch(cmd *cobra.Command, verb string, result batchResult) error {
	out := cmd.OutOrStdout()
	if len(result.Successful) > 0 {
		fmt.Fprintf(out, "✓ %s %d of %d proxies: %s\n", verb, len(result.Successful), result.Requested, joinIDs(result.Successful))
	}
	for _, f := range result.Failed {
		logger.Error().Err(f.Err).Int64("proxy_id", f.ProxyID).Msg("Operation failed")
		fmt.Fprintf(out, "✗ %s\n", f.Error())
	}

	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d operations failed", len(result.Failed), result.Requested)
	}
	return nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
