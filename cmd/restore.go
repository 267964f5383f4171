package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kreigan/pdnsctl/pkg/pdns"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [backup-file]",
	Short: "Recreate a zone from a backup file",
	Long: `Recreate a zone from a JSON file written by the backup command.

The snapshot's record sets are posted as-is. The nameservers field is
cleared before the request since the NS record sets in the snapshot
already carry them; creation fails when the zone exists.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}

	backupFile := args[0]
	data, err := os.ReadFile(backupFile) //nolint:gosec // path is from CLI argument
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	var zone pdns.Zone
	if err := json.Unmarshal(data, &zone); err != nil {
		return fmt.Errorf("failed to parse backup: %w", err)
	}
	if zone.Name == "" {
		return fmt.Errorf("backup %s does not name a zone", backupFile)
	}

	// Server-assigned fields must not be replayed.
	zone.ID = ""
	zone.URL = ""
	zone.Serial = 0
	zone.Nameservers = nil

	rt.log.Info("Restoring zone %s from %s", zone.Name, backupFile)
	created, err := rt.client.CreateZone(cmd.Context(), rt.serverID, &zone)
	if err != nil {
		return err
	}

	rt.log.Info("Zone %s successfully restored", created.Name)
	return nil
}
