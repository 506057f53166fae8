package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gatewayz/gatewayz-go/pkg/types"
)

func chatCmd(flags *globalFlags) *cobra.Command {
	var (
		model       string
		system      string
		temperature float64
		maxTokens   int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "chat MESSAGE...",
		Short: "Send a chat completion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient(cmd)
			if err != nil {
				return err
			}
			if err := requireCredential(client); err != nil {
				return err
			}

			req := &types.ChatCompletionRequest{Model: model}
			if system != "" {
				req.Messages = append(req.Messages, types.ChatMessage{Role: types.RoleSystem, Content: system})
			}
			req.Messages = append(req.Messages, types.ChatMessage{Role: types.RoleUser, Content: strings.Join(args, " ")})
			if cmd.Flags().Changed("temperature") {
				req.Temperature = &temperature
			}
			if cmd.Flags().Changed("max-tokens") {
				req.MaxTokens = &maxTokens
			}

			resp, err := client.ChatCompletion(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Content())
			if resp.Usage != nil && flags.debug {
				fmt.Fprintf(cmd.ErrOrStderr(), "tokens: %d prompt, %d completion\n", resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&model, "model", "m", "", "model id (required)")
	f.StringVar(&system, "system", "", "system prompt")
	f.Float64Var(&temperature, "temperature", 0, "sampling temperature")
	f.IntVar(&maxTokens, "max-tokens", 0, "maximum completion tokens")
	f.BoolVar(&asJSON, "json", false, "print the full response as JSON")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}
