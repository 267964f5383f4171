package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listZonesCmd = &cobra.Command{
	Use:          "list-zones",
	Short:        "List zones on the server",
	SilenceUsage: true,
	RunE:         runListZones,
}

func init() {
	rootCmd.AddCommand(listZonesCmd)
}

func runListZones(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}

	zones, err := rt.client.ListZones(cmd.Context(), rt.serverID)
	if err != nil {
		return err
	}

	rows := make([][]string, len(zones))
	for i, zone := range zones {
		rows[i] = []string{
			zone.Name,
			zone.Kind,
			fmt.Sprintf("%d", zone.Serial),
		}
	}

	rt.log.Table("Zones", []string{"NAME", "KIND", "SERIAL"}, rows)
	return nil
}
