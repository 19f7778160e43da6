package cmd

import (
	"errors"
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/s0up4200/mefrp-go/mefrp"
)

const repoSlug = "s0up4200/mefrp-go"

var (
	checkOnly   bool
	forceUpdate bool
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:               "update",
	Short:             "Update mefrp to the latest release",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInit,
	RunE:              runUpdate,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInit,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mefrp %s (built %s, sdk %s)\n", appVersion, buildTime, mefrp.Version)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
	updateCmd.Flags().BoolVar(&forceUpdate, "force", false, "update even when running a development build")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	current, err := semver.ParseTolerant(appVersion)
	if err != nil {
		if !forceUpdate {
			return fmt.Errorf("cannot update development build %q, use --force to install the latest release", appVersion)
		}
		current = semver.Version{}
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return errors.New("no release found for this platform")
	}

	latestVersion, err := semver.ParseTolerant(latest.Version())
	if err != nil {
		return fmt.Errorf("release has an invalid version %q: %w", latest.Version(), err)
	}

	out := cmd.OutOrStdout()
	if !latestVersion.GT(current) {
		fmt.Fprintf(out, "✓ Already up to date (%s)\n", appVersion)
		return nil
	}

	if checkOnly {
		fmt.Fprintf(out, "Update available: %s → %s\n", appVersion, latestVersion)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	logger.Info().
		Str("from", appVersion).
		Str("to", latestVersion.String()).
		Str("asset", latest.AssetName).
		Msg("Downloading update")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to install update: %w", err)
	}

	fmt.Fprintf(out, "✓ Updated to %s\n", latestVersion)
	return nil
}
