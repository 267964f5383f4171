// Package cmd provides the pdnsctl CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kreigan/pdnsctl/pkg/logger"
	"github.com/kreigan/pdnsctl/pkg/pdns"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pdnsctl",
	Short: "Manage PowerDNS zones and records over the HTTP API",
	Long: `A CLI for the PowerDNS Authoritative HTTP API.

pdnsctl talks directly to a PowerDNS server: it creates zones from YAML
specs, clones zones under a new name, triggers NOTIFY, and backs up or
restores zone snapshots. All durable state lives on the server; pdnsctl
keeps nothing between invocations.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP(
		"api", "A", "", "PowerDNS API endpoint (e.g., http://localhost:8081/api/v1)")
	rootCmd.PersistentFlags().StringP("key", "K", "", "PowerDNS API key")
	rootCmd.PersistentFlags().String("server", "localhost", "Server id on the endpoint")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format (structured logging)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("insecure", false, "Skip TLS certificate verification")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Request timeout (0 uses the transport default)")

	if err := rootCmd.MarkPersistentFlagRequired("api"); err != nil {
		panic(fmt.Sprintf("failed to mark api as required: %v", err))
	}
	if err := rootCmd.MarkPersistentFlagRequired("key"); err != nil {
		panic(fmt.Sprintf("failed to mark key as required: %v", err))
	}
}

// runtime bundles the logger and client shared by all subcommands.
type runtime struct {
	log      *logger.Logger
	client   *pdns.Client
	serverID string
}

// setup builds the logger and API client from the persistent flags.
func setup(cmd *cobra.Command) (*runtime, error) {
	api, err := cmd.Flags().GetString("api")
	if err != nil {
		return nil, fmt.Errorf("failed to get api flag: %w", err)
	}
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return nil, fmt.Errorf("failed to get key flag: %w", err)
	}
	serverID, err := cmd.Flags().GetString("server")
	if err != nil {
		return nil, fmt.Errorf("failed to get server flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return nil, fmt.Errorf("failed to get json flag: %w", err)
	}
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-color flag: %w", err)
	}
	insecure, err := cmd.Flags().GetBool("insecure")
	if err != nil {
		return nil, fmt.Errorf("failed to get insecure flag: %w", err)
	}
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, fmt.Errorf("failed to get timeout flag: %w", err)
	}

	log := logger.New(logger.Options{
		Verbose: verbose,
		JSON:    jsonOutput,
		NoColor: noColor,
	})
	log.Debug("API endpoint: %s", api)
	log.Debug("API key: %s", logger.MaskSecret(key))
	log.Debug("Server id: %s", serverID)

	opts := []pdns.Option{pdns.WithLogger(log)}
	if insecure {
		opts = append(opts, pdns.WithInsecureTLS())
	}
	if timeout > 0 {
		opts = append(opts, pdns.WithTimeout(timeout))
	}

	client, err := pdns.NewClient(api, key, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &runtime{log: log, client: client, serverID: serverID}, nil
}
