package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/mefrp-go/config"
	"github.com/s0up4200/mefrp-go/credentials"
	"github.com/s0up4200/mefrp-go/mefrp"
	"github.com/s0up4200/mefrp-go/metrics"
)

var (
	cfgFile     string
	cfg         *config.Config
	logger      zerolog.Logger
	client      *mefrp.Client
	closeClient func() error
	store       *credentials.Store
	registry    *prometheus.Registry

	// Persistent flags
	outputFormat string
	useAsync     bool
	dumpMetrics  bool

	appVersion = "dev"
	buildTime  = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mefrp",
	Short: "Manage MEFrp tunnels from the command line",
	Long: `mefrp is a CLI for the MEFrp tunnel service. It can log in, inspect the
account, list and filter proxies, fetch frpc configuration and check node health.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := executeContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// executeContext runs the command tree, then releases the client and prints
// metrics whether or not the command failed.
func executeContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if ferr := finalizeApp(rootCmd.ErrOrStderr()); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

// SetVersion records build information for the version and update commands
func SetVersion(version, built string) {
	appVersion = version
	buildTime = built
}

// userAgent is sent when the config leaves api.user_agent empty
func userAgent() string {
	return "mefrp-cli/" + appVersion + " " + mefrp.DefaultUserAgent
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or $XDG_CONFIG_HOME/mefrp/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json, yaml or toml")
	rootCmd.PersistentFlags().BoolVar(&useAsync, "async", false, "share one connection pool across concurrent requests")
	rootCmd.PersistentFlags().BoolVar(&dumpMetrics, "metrics", false, "print request metrics to stderr on exit")
}

// initializeApp loads configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("output") {
		if err := config.ValidateOutputFormat(outputFormat); err != nil {
			return err
		}
		cfg.Output.Format = outputFormat
	}

	logger = setupLogger(cfg.Logging, os.Stderr)

	store, err = credentials.NewStore(cfg.Credentials.Path)
	if err != nil {
		return fmt.Errorf("failed to open credentials store: %w", err)
	}

	// Priority: config or environment > saved login
	token := cfg.API.Token
	if token == "" {
		creds, err := store.Load()
		if err != nil {
			logger.Warn().Err(err).Str("path", store.Path()).Msg("Ignoring unreadable credentials file")
		} else {
			token = creds.Token
		}
	}

	ua := cfg.API.UserAgent
	if ua == "" {
		ua = userAgent()
	}

	opts := []mefrp.Option{
		mefrp.WithToken(token),
		mefrp.WithBaseURL(cfg.API.BaseURL),
		mefrp.WithUserAgent(ua),
		mefrp.WithTimeout(cfg.API.Timeout),
		mefrp.WithBypassSystemProxy(cfg.API.BypassSystemProxy),
		mefrp.WithLogger(logger),
	}

	if dumpMetrics {
		registry = prometheus.NewRegistry()
		opts = append(opts, mefrp.WithObserver(metrics.New(registry)))
	}

	if useAsync {
		ac := mefrp.NewAsync(opts...)
		client = ac.Client
		closeClient = ac.Close
	} else {
		client = mefrp.New(opts...)
		closeClient = func() error { return nil }
	}

	logger.Debug().
		Str("base_url", cfg.API.BaseURL).
		Bool("async", useAsync).
		Bool("authenticated", token != "").
		Msg("MEFrp client ready")

	return nil
}

// finalizeApp releases the client and prints metrics when requested. It runs
// once per execution and clears both so a later run starts clean.
func finalizeApp(w io.Writer) error {
	defer func() {
		closeClient = nil
		registry = nil
	}()

	if closeClient != nil {
		if err := closeClient(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close client")
		}
	}

	if registry != nil {
		return metrics.WriteText(w, registry)
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(w),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// skipInit is used by commands that must work without a valid config
func skipInit(cmd *cobra.Command, args []string) error {
	logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true}, os.Stderr)
	return nil
}
