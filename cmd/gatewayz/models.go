package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gatewayz/gatewayz-go/pkg/catalog"
)

type modelsFlags struct {
	timeRange string
	category  string
	sort      string
	top       int
	org       string
	apps      string
	offline   bool
	json      bool
}

func modelsCmd(flags *globalFlags) *cobra.Command {
	mf := &modelsFlags{}

	cmd := &cobra.Command{
		Use:   "models",
		Short: "Show model rankings",
		Long: `Show model rankings built from the live catalog.

When the catalog cannot be fetched the built-in snapshot is shown instead
and the table is marked as offline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, ok := catalog.ParseCategory(mf.category)
			if !ok && mf.category != "" {
				names := lo.Map(catalog.Categories, func(c catalog.Category, _ int) string { return string(c) })
				return fmt.Errorf("unknown category %q (one of: %s)", mf.category, strings.Join(names, ", "))
			}
			var frame catalog.AppTimeFrame
			if mf.apps != "" {
				if frame, ok = catalog.ParseAppTimeFrame(mf.apps); !ok {
					return fmt.Errorf("unknown app time frame %q (today, week, month)", mf.apps)
				}
			}

			src := catalog.Unavailable(nil)
			if !mf.offline {
				client, err := flags.newClient(cmd)
				if err != nil {
					return err
				}
				src = catalog.FromFetch(client.GetModels(cmd.Context()))
			}

			view := catalog.BuildView(src, catalog.ViewOptions{
				TimeRange: catalog.ParseTimeRange(mf.timeRange),
				Category:  category,
				AppFrame:  frame,
				Sort:      catalog.ParseSortKey(mf.sort),
				Limit:     mf.top,
			})

			out := cmd.OutOrStdout()
			if mf.org != "" {
				summary := catalog.ForOrganization(view.Models, mf.org)
				if mf.json {
					return printJSON(out, summary)
				}
				writeOrganization(out, summary)
				return nil
			}
			if mf.json {
				return printJSON(out, catalog.Rank(view.Filtered))
			}
			if !view.Live && !mf.offline && view.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "catalog unavailable, showing snapshot: %v\n", view.Err)
			}
			writeRankings(out, view, catalog.ParseTimeRange(mf.timeRange))
			if mf.apps != "" {
				fmt.Fprintln(out)
				writeApps(out, view.Apps)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&mf.timeRange, "range", string(catalog.DefaultTimeRange), "time range: week, month or year")
	f.StringVar(&mf.category, "category", "", "filter by category")
	f.StringVar(&mf.sort, "sort", string(catalog.SortRank), "sort by: rank, tokens or value")
	f.IntVar(&mf.top, "top", catalog.DefaultLimit, "number of rows to show")
	f.StringVar(&mf.org, "org", "", "summarize one organization")
	f.StringVar(&mf.apps, "apps", "", "also show top apps for: today, week or month")
	f.BoolVar(&mf.offline, "offline", false, "use the built-in snapshot without calling the API")
	f.BoolVar(&mf.json, "json", false, "print JSON")
	return cmd
}

func writeRankings(out io.Writer, view catalog.View, tr catalog.TimeRange) {
	source := "live"
	if !view.Live {
		source = "offline"
	}
	fmt.Fprintf(out, "Top models, %s (%s)\n", strings.ToLower(tr.Label()), source)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tMODEL\tORGANIZATION\tCATEGORY\tTOKENS\tVALUE\tCHANGE")
	for _, r := range catalog.Rank(view.Filtered) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Rank, r.Name, r.Organization, r.Category, catalog.FormatTokens(r.Tokens), r.Value, catalog.FormatChange(r.Change))
	}
	_ = tw.Flush()
}

func writeApps(out io.Writer, apps []catalog.AppRecord) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "APP\tTOKENS\tCHANGE")
	for _, a := range apps {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name, catalog.FormatTokens(a.Tokens), catalog.FormatChange(a.Change))
	}
	_ = tw.Flush()
}

func writeOrganization(out io.Writer, s catalog.OrganizationSummary) {
	fmt.Fprintf(out, "%s: %d models, %s tokens, top model %s\n",
		s.Organization, len(s.Models), catalog.FormatTokens(s.TotalTokens), s.TopModel)
}

func providersCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "Show model providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := flags.newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := client.GetModelProviders(cmd.Context())
			if err != nil {
				return err
			}
			return printRaw(cmd.OutOrStdout(), raw)
		},
	}
}
