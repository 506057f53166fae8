// Command gatewayz is a command-line client for the Gatewayz API.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/gatewayz/gatewayz-go"
	"github.com/gatewayz/gatewayz-go/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", gatewayz.ErrorMessage(err))
		if gatewayz.IsAuthError(err) {
			fmt.Fprintf(os.Stderr, "Your API key was rejected. Set %s or pass --api-key.\n", gatewayz.EnvAPIKey)
		}
		os.Exit(1)
	}
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	baseURL    string
	apiKey     string
	timeout    time.Duration
	retries    int
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "gatewayz",
		Short:         "Command-line client for the Gatewayz AI gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	pf.StringVar(&flags.baseURL, "base-url", "", "API base URL")
	pf.StringVar(&flags.apiKey, "api-key", "", "API key")
	pf.DurationVar(&flags.timeout, "timeout", 0, "per-attempt timeout")
	pf.IntVar(&flags.retries, "retries", 0, "total attempts per request")
	pf.BoolVar(&flags.debug, "debug", false, "log every request to stderr")

	root.AddCommand(
		healthCmd(flags),
		modelsCmd(flags),
		providersCmd(flags),
		balanceCmd(flags),
		profileCmd(flags),
		monitorCmd(flags),
		limitsCmd(flags),
		whoamiCmd(flags),
		keysCmd(flags),
		chatCmd(flags),
		adminCmd(flags),
		versionCmd(),
	)
	return root
}

// newClient builds a client from config file, environment and flags, in
// that order of increasing precedence.
func (f *globalFlags) newClient(cmd *cobra.Command) (*gatewayz.Client, error) {
	settings, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("base-url") {
		settings.BaseURL = f.baseURL
	}
	if changed("api-key") {
		settings.APIKey = f.apiKey
	}
	if changed("timeout") {
		settings.Timeout = f.timeout
	}
	if changed("retries") {
		settings.RetryAttempts = f.retries
	}
	if changed("debug") {
		settings.Debug = f.debug
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if settings.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return gatewayz.NewFromSettings(settings, gatewayz.WithLogger(gatewayz.NewSlogAdapter(logger)))
}

// requireCredential fails early for endpoints that need an API key.
func requireCredential(client *gatewayz.Client) error {
	if !client.HasCredential() {
		return fmt.Errorf("%w: set %s or pass --api-key", gatewayz.ErrNoCredential, gatewayz.EnvAPIKey)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRaw pretty-prints a raw JSON payload.
func printRaw(w io.Writer, raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return errors.New("response is not valid JSON")
	}
	return printJSON(w, v)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gatewayz version %s\n", gatewayz.Version)
		},
	}
}
