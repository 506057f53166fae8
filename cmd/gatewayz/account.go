package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gatewayz/gatewayz-go"
	"github.com/gatewayz/gatewayz-go/pkg/types"
)

func healthCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := flags.newClient(cmd)
			if err != nil {
				return err
			}
			health, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if health.IsHealthy() {
				fmt.Fprintf(out, "healthy (%s)\n", client.BaseURL())
				return nil
			}
			fmt.Fprintf(out, "status: %s (%s)\n", health.Status, client.BaseURL())
			return nil
		},
	}
}

// authedCommand builds a command that prints the JSON result of an
// authenticated call.
func authedCommand[T any](flags *globalFlags, use, short string, call func(*gatewayz.Client, context.Context) (T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := flags.newClient(cmd)
			if err != nil {
				return err
			}
			if err := requireCredential(client); err != nil {
				return err
			}
			result, err := call(client, cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func balanceCmd(flags *globalFlags) *cobra.Command {
	return authedCommand(flags, "balance", "Show your credit balance", (*gatewayz.Client).GetUserBalance)
}

func profileCmd(flags *globalFlags) *cobra.Command {
	cmd := authedCommand(flags, "profile", "Show or update your profile", (*gatewayz.Client).GetUserProfile)

	var name, email string
	cmd.Flags().StringVar(&name, "set-name", "", "update the display name")
	cmd.Flags().StringVar(&email, "set-email", "", "update the email address")

	show := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if name == "" && email == "" {
			return show(cmd, args)
		}
		client, err := flags.newClient(cmd)
		if err != nil {
			return err
		}
		if err := requireCredential(client); err != nil {
			return err
		}
		result, err := client.UpdateUserProfile(cmd.Context(), &types.ProfileUpdate{Name: name, Email: email})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	}
	return cmd
}

func monitorCmd(flags *globalFlags) *cobra.Command {
	return authedCommand(flags, "monitor", "Show your usage monitoring data", (*gatewayz.Client).GetUserMonitor)
}

func limitsCmd(flags *globalFlags) *cobra.Command {
	return authedCommand(flags, "limits", "Show your rate limits", (*gatewayz.Client).GetUserLimits)
}

func whoamiCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Validate the API key and show balance and profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := flags.newClient(cmd)
			if err != nil {
				return err
			}
			key := client.Credential()

			session := gatewayz.NewSession(client, nil, gatewayz.WithOnAuthExpired(func() {
				fmt.Fprintln(cmd.ErrOrStderr(), "Authentication expired. Please sign in again.")
			}))
			if err := session.SignIn(key); err != nil {
				return err
			}
			if err := session.RefreshUserData(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			profile, balance := session.Profile(), session.Balance()
			fmt.Fprintf(out, "key:      %s\n", gatewayz.MaskCredential(key))
			fmt.Fprintf(out, "user:     %s <%s>\n", profile.Username, profile.Email)
			fmt.Fprintf(out, "credits:  %.2f\n", balance.Credits)
			return nil
		},
	}
}
