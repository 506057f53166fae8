package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gatewayz/gatewayz-go"
)

func adminCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations (requires an admin key)",
	}
	cmd.AddCommand(adminCreditsCmd(flags), adminMonitorCmd(flags))
	return cmd
}

func adminCreditsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "credits USER_ID AMOUNT",
		Short: "Add credits to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			client, err := flags.newClient(cmd)
			if err != nil {
				return err
			}
			if err := requireCredential(client); err != nil {
				return err
			}
			result, err := client.AddCredits(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func adminMonitorCmd(flags *globalFlags) *cobra.Command {
	return authedCommand(flags, "monitor", "Show system-wide monitoring data", (*gatewayz.Client).GetSystemMonitor)
}
