package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kreigan/pdnsctl/internal/zonespec"
	"github.com/kreigan/pdnsctl/pkg/pdns"
)

var createZoneCmd = &cobra.Command{
	Use:   "create-zone [spec-file]",
	Short: "Create a zone from a YAML spec file",
	Long: `Create a zone from a YAML spec file.

The spec names the zone, its kind (Native, Master or Slave), nameservers
or masters, and an optional list of record sets. The document is
validated before any API call; creation fails when the zone already
exists on the server.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runCreateZone,
}

var createDryRun bool

func init() {
	rootCmd.AddCommand(createZoneCmd)
	createZoneCmd.Flags().BoolVar(&createDryRun, "dry-run", false,
		"Validate the spec and show the planned zone without calling the API")
}

func runCreateZone(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	rt.log.SetDryRun(createDryRun)

	specFile := args[0]
	rt.log.Info("Loading zone spec from %s", specFile)

	spec, err := zonespec.LoadFromFile(specFile)
	if err != nil {
		return fmt.Errorf("failed to load spec: %w", err)
	}

	if validationErr := spec.Validate(); validationErr != nil {
		return validationErr
	}

	zone, err := spec.ToZone()
	if err != nil {
		return err
	}

	printZonePlan(rt, zone)
	if createDryRun {
		return nil
	}

	created, err := rt.client.CreateZone(cmd.Context(), rt.serverID, zone)
	if err != nil {
		return err
	}

	rt.log.Info("Zone %s created (serial %d)", created.Name, created.Serial)
	return nil
}

func printZonePlan(rt *runtime, zone *pdns.Zone) {
	rt.log.Info("Zone: %s (kind=%s)", zone.Name, zone.Kind)
	if len(zone.Nameservers) > 0 {
		rt.log.Info("Nameservers: %s", strings.Join(zone.Nameservers, ", "))
	}
	if len(zone.Masters) > 0 {
		rt.log.Info("Masters: %s", strings.Join(zone.Masters, ", "))
	}

	var rows [][]string
	for _, rrset := range zone.RRsets {
		for _, record := range rrset.Records {
			status := ""
			if record.Disabled {
				status = "disabled"
			}
			rows = append(rows, []string{
				rrset.Name,
				rrset.Type,
				fmt.Sprintf("%d", rrset.TTL),
				record.Content,
				status,
			})
		}
	}

	headers := []string{"NAME", "TYPE", "TTL", "CONTENT", "STATUS"}
	rt.log.Table("Record sets", headers, rows)
}
