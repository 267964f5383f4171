package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kreigan/pdnsctl/internal/clone"
)

var copyZoneCmd = &cobra.Command{
	Use:   "copy-zone",
	Short: "Clone a zone under a new name",
	Long: `Clone an existing zone under a new name.

Record set names are rewritten to the new zone, and CNAME records whose
target points at the source zone are rewritten to point at the new zone.
Optionally, other zones are scanned for CNAME records referencing the
source zone and patched in place.

When the destination zone already exists the command prints a notice and
exits successfully without touching the server.`,
	SilenceUsage: true,
	RunE:         runCopyZone,
}

var (
	copySrcZone     string
	copyDstZone     string
	copyUpdateZones []string
)

func init() {
	rootCmd.AddCommand(copyZoneCmd)
	copyZoneCmd.Flags().StringVarP(&copySrcZone, "zone", "z", "", "Source zone name")
	copyZoneCmd.Flags().StringVarP(&copyDstZone, "new-zone", "n", "", "Destination zone name")
	copyZoneCmd.Flags().StringSliceVarP(&copyUpdateZones, "update", "u", nil,
		"Comma-separated zones to scan for CNAME records pointing at the source zone")

	for _, flag := range []string{"zone", "new-zone"} {
		if err := copyZoneCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s as required: %v", flag, err))
		}
	}
}

func runCopyZone(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}

	cloner := clone.NewCloner(rt.client, rt.serverID, rt.log)

	result, err := cloner.Clone(cmd.Context(), copySrcZone, copyDstZone)
	if err != nil {
		if errors.Is(err, clone.ErrZoneExists) {
			rt.log.Warn("Zone %s already exists, nothing to do", copyDstZone)
			return nil
		}
		return err
	}

	rt.log.InfoWithData(
		fmt.Sprintf("Copied %s to %s (%d record set(s))", copySrcZone, copyDstZone, result.RRSetsCopied),
		map[string]interface{}{
			"source":        copySrcZone,
			"destination":   copyDstZone,
			"rrsetsCopied":  result.RRSetsCopied,
			"rrsetsSkipped": result.RRSetsSkipped,
		})

	if len(copyUpdateZones) == 0 {
		return nil
	}

	rewritten, err := cloner.RewriteReferences(cmd.Context(), copyUpdateZones, copySrcZone, copyDstZone)
	if err != nil {
		return err
	}
	for zone, count := range rewritten {
		rt.log.Info("Rewrote %d CNAME record set(s) in %s", count, zone)
	}

	return nil
}
