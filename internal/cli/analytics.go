package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sauceclient/sauceclient/pkg/sauce"
)

// filterFlags binds the flags shared by every analytics command.
func filterFlags(fs *pflag.FlagSet, f *sauce.AnalyticsFilter) {
	fs.StringVar(&f.TimeRange, "time-range", "", "Relative range such as 1m, 2h or 7d")
	fs.StringVar(&f.Start, "start", "", "Start of the range, RFC 3339")
	fs.StringVar(&f.End, "end", "", "End of the range, RFC 3339")
	fs.StringVar(&f.Scope, "scope", "", "Scope: me, organization or single")
	fs.StringVar(&f.Owner, "owner", "", "Owner when the scope is single")
	fs.StringVar(&f.Status, "status", "", "Test status: errored, complete, passed or failed")
	fs.BoolVar((*bool)(&f.Pretty), "pretty", false, "Ask the service for pretty printed JSON")
}

func newAnalyticsCmd(o *rootOptions) *cobra.Command {
	analyticsCmd := &cobra.Command{
		Use:   "analytics",
		Short: "Query test analytics",
	}
	analyticsCmd.AddCommand(
		newTestTrendsCmd(o),
		newErrorTrendsCmd(o, "error-trends", "Show the most frequent errors", func(c *sauce.Client, cmd *cobra.Command, opts sauce.ErrorTrendsOptions) (any, error) {
			return c.Analytics.GetErrorTrends(cmd.Context(), opts)
		}),
		newErrorTrendsCmd(o, "build-trends", "Show test results grouped by build", func(c *sauce.Client, cmd *cobra.Command, opts sauce.ErrorTrendsOptions) (any, error) {
			return c.Analytics.GetBuildTrends(cmd.Context(), opts)
		}),
		newTestsCmd(o),
		newConcurrencyCmd(o),
	)
	return analyticsCmd
}

func newTestTrendsCmd(o *rootOptions) *cobra.Command {
	var opts sauce.TrendsOptions
	cmd := &cobra.Command{
		Use:   "test-trends",
		Short: "Show test counts bucketed over time",
		Long: `Show test counts bucketed over time.

Examples:
  sauce analytics test-trends --time-range 7d --interval 1d --scope organization`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "test trends", func(c *sauce.Client) (any, error) {
				return c.Analytics.GetTestTrends(cmd.Context(), opts)
			})
		},
	}
	filterFlags(cmd.Flags(), &opts.AnalyticsFilter)
	cmd.Flags().StringVar(&opts.Interval, "interval", "", "Bucket size such as 1h or 1d")
	cmd.Flags().StringVar(&opts.OS, "os", "", "Only tests on this operating system")
	cmd.Flags().StringVar(&opts.Browser, "browser", "", "Only tests on this browser")
	return cmd
}

func newErrorTrendsCmd(o *rootOptions, use, short string, fn func(*sauce.Client, *cobra.Command, sauce.ErrorTrendsOptions) (any, error)) *cobra.Command {
	var opts sauce.ErrorTrendsOptions
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, use, func(c *sauce.Client) (any, error) {
				return fn(c, cmd, opts)
			})
		},
	}
	filterFlags(cmd.Flags(), &opts.AnalyticsFilter)
	cmd.Flags().StringVar(&opts.OS, "os", "", "Only tests on this operating system")
	cmd.Flags().StringVar(&opts.Browser, "browser", "", "Only tests on this browser")
	return cmd
}

func newTestsCmd(o *rootOptions) *cobra.Command {
	var (
		opts         sauce.TestsOptions
		missingBuild bool
	)
	cmd := &cobra.Command{
		Use:   "tests",
		Short: "List tests matching a filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.MissingBuild = sauce.Flag(missingBuild)
			return o.call(cmd, "tests", func(c *sauce.Client) (any, error) {
				return c.Analytics.GetTests(cmd.Context(), opts)
			})
		},
	}
	filterFlags(cmd.Flags(), &opts.AnalyticsFilter)
	cmd.Flags().IntVar(&opts.Size, "size", 0, "Maximum number of tests")
	cmd.Flags().IntVar(&opts.Skip, "skip", 0, "Number of tests to skip")
	cmd.Flags().StringVar(&opts.Error, "error", "", "Only tests that failed with this error")
	cmd.Flags().StringVar(&opts.Build, "build", "", "Only tests of this build")
	cmd.Flags().BoolVar(&missingBuild, "missing-build", false, "Only tests without a build")
	return cmd
}

func newConcurrencyCmd(o *rootOptions) *cobra.Command {
	var opts sauce.ConcurrencyOptions
	cmd := &cobra.Command{
		Use:   "concurrency",
		Short: "Show concurrency usage over time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "concurrency", func(c *sauce.Client) (any, error) {
				return c.Analytics.GetConcurrency(cmd.Context(), opts)
			})
		},
	}
	filterFlags(cmd.Flags(), &opts.AnalyticsFilter)
	cmd.Flags().StringVar(&opts.Interval, "interval", "", "Bucket size such as 1h or 1d")
	return cmd
}
