package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Save a zone snapshot to a JSON file",
	Long: `Save a zone, including all its record sets, to a JSON file that the
restore command can replay against a server.`,
	SilenceUsage: true,
	RunE:         runBackup,
}

var (
	backupZone   string
	backupOutput string
	backupPretty bool
)

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.Flags().StringVarP(&backupZone, "zone", "z", "", "Zone name")
	backupCmd.Flags().StringVarP(&backupOutput, "output", "o", "",
		"Output file (defaults to <zone>.json in the current directory)")
	backupCmd.Flags().BoolVar(&backupPretty, "pretty", false, "Indent the JSON output")
	if err := backupCmd.MarkFlagRequired("zone"); err != nil {
		panic(fmt.Sprintf("failed to mark zone as required: %v", err))
	}
}

func runBackup(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}

	zone, err := rt.client.GetZone(cmd.Context(), rt.serverID, backupZone)
	if err != nil {
		return err
	}
	if zone == nil {
		return fmt.Errorf("zone %s does not exist", backupZone)
	}

	output := backupOutput
	if output == "" {
		output = strings.TrimSuffix(zone.Name, ".") + ".json"
	}

	var data []byte
	if backupPretty {
		data, err = json.MarshalIndent(zone, "", "  ")
	} else {
		data, err = json.Marshal(zone)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal zone: %w", err)
	}

	if err := os.WriteFile(output, data, 0o600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	rt.log.Info("Zone %s saved to %s", zone.Name, output)
	return nil
}
