package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gatewayz/gatewayz-go"
	"github.com/gatewayz/gatewayz-go/pkg/types"
)

func keysCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API keys",
	}
	cmd.AddCommand(keysListCmd(flags), keysCreateCmd(flags), keysDeleteCmd(flags), keysUsageCmd(flags))
	return cmd
}

func keysListCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your API keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := flags.newClient(cmd)
			if err != nil {
				return err
			}
			if err := requireCredential(client); err != nil {
				return err
			}
			list, err := client.ListAPIKeys(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), list)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tKEY\tENV\tACTIVE\tREQUESTS")
			for _, k := range list.Keys {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\t%d\n",
					k.ID, k.Name, gatewayz.MaskCredential(k.Key), k.Environment, k.IsActive, k.Requests)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func keysCreateCmd(flags *globalFlags) *cobra.Command {
	req := &types.CreateAPIKeyRequest{}
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient(cmd)
			if err != nil {
				return err
			}
			if err := requireCredential(client); err != nil {
				return err
			}
			req.Name = args[0]
			resp, err := client.CreateAPIKey(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "created key %q\n", args[0])
			fmt.Fprintln(out, resp.APIKey)
			fmt.Fprintln(cmd.ErrOrStderr(), "Store this key now; it will not be shown again.")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Environment, "env", "", "environment tag (live, test, staging, development)")
	f.StringSliceVar(&req.Scopes, "scope", nil, "scope permission (repeatable)")
	f.IntVar(&req.ExpirationDays, "expires-in-days", 0, "expire the key after this many days")
	f.IntVar(&req.MaxRequests, "max-requests", 0, "request quota for the key")
	return cmd
}

func keysDeleteCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient(cmd)
			if err != nil {
				return err
			}
			if err := requireCredential(client); err != nil {
				return err
			}
			if _, err := client.DeleteAPIKey(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted key %s\n", args[0])
			return nil
		},
	}
}

func keysUsageCmd(flags *globalFlags) *cobra.Command {
	return authedCommand(flags, "usage", "Show per-key usage", (*gatewayz.Client).GetAPIKeyUsage)
}
