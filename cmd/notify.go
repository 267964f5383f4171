package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:          "notify",
	Short:        "Queue a DNS NOTIFY to all slaves of a zone",
	SilenceUsage: true,
	RunE:         runNotify,
}

var notifyZone string

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.Flags().StringVarP(&notifyZone, "zone", "z", "", "Zone name")
	if err := notifyCmd.MarkFlagRequired("zone"); err != nil {
		panic(fmt.Sprintf("failed to mark zone as required: %v", err))
	}
}

func runNotify(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}

	if err := rt.client.NotifyZone(cmd.Context(), rt.serverID, notifyZone); err != nil {
		return err
	}

	rt.log.Info("Notification queued for %s", notifyZone)
	return nil
}
