package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/sauceclient/sauceclient/pkg/sauce"
)

func newJobsCmd(o *rootOptions) *cobra.Command {
	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "List, inspect and change jobs",
	}
	jobsCmd.AddCommand(
		newJobsListCmd(o),
		newJobsIDsCmd(o),
		newJobsUpdateCmd(o),
		newJobsTokenCmd(o),
		newJobsLinkCmd(o),
		newJobsAssetURLCmd(o),
	)

	single := []struct {
		use, short string
		fn         func(cmd *cobra.Command, j *sauce.Jobs, id string) (any, error)
	}{
		{"get", "Show a job", func(cmd *cobra.Command, j *sauce.Jobs, id string) (any, error) {
			return j.GetJob(cmd.Context(), id)
		}},
		{"stop", "Stop a running job", func(cmd *cobra.Command, j *sauce.Jobs, id string) (any, error) {
			return j.StopJob(cmd.Context(), id)
		}},
		{"delete", "Delete a job and its assets", func(cmd *cobra.Command, j *sauce.Jobs, id string) (any, error) {
			return j.DeleteJob(cmd.Context(), id)
		}},
		{"assets", "List the assets of a job", func(cmd *cobra.Command, j *sauce.Jobs, id string) (any, error) {
			return j.GetJobAssets(cmd.Context(), id)
		}},
		{"delete-assets", "Delete the assets of a job", func(cmd *cobra.Command, j *sauce.Jobs, id string) (any, error) {
			return j.DeleteJobAssets(cmd.Context(), id)
		}},
	}
	for _, s := range single {
		s := s
		jobsCmd.AddCommand(&cobra.Command{
			Use:   s.use + " <job-id>",
			Short: s.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.call(cmd, "job "+s.use, func(c *sauce.Client) (any, error) {
					return s.fn(cmd, c.Jobs, args[0])
				})
			},
		})
	}
	return jobsCmd
}

func newJobsListCmd(o *rootOptions) *cobra.Command {
	var (
		opts                   sauce.JobsOptions
		full                   bool
		limit, skip            int
		name, from, to, format string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent jobs",
		Long: `List recent jobs of the account.

Examples:
  # The ten most recent jobs with all attributes
  sauce jobs list --limit 10 --full

  # Jobs in a time window (unix timestamps)
  sauce jobs list --from 1700000000 --to 1700086400`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("full") {
				opts.Full = sauce.Bool(full)
			}
			if cmd.Flags().Changed("limit") {
				opts.Limit = sauce.Int(limit)
			}
			if cmd.Flags().Changed("skip") {
				opts.Skip = sauce.Int(skip)
			}
			if cmd.Flags().Changed("name") {
				opts.Name = sauce.String(name)
			}
			if cmd.Flags().Changed("from") {
				opts.Start = sauce.String(from)
			}
			if cmd.Flags().Changed("to") {
				opts.End = sauce.String(to)
			}
			if cmd.Flags().Changed("format") {
				opts.Format = sauce.String(format)
			}
			return o.call(cmd, "jobs", func(c *sauce.Client) (any, error) {
				return c.Jobs.GetJobs(cmd.Context(), opts)
			})
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Return all job attributes")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of jobs")
	cmd.Flags().IntVar(&skip, "skip", 0, "Number of jobs to skip")
	cmd.Flags().StringVar(&name, "name", "", "Only jobs with this name")
	cmd.Flags().StringVar(&from, "from", "", "Only jobs started after this unix timestamp")
	cmd.Flags().StringVar(&to, "to", "", "Only jobs started before this unix timestamp")
	cmd.Flags().StringVar(&format, "format", "", "Response format, json or csv")
	return cmd
}

func newJobsIDsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ids",
		Short: "List the ids of recent jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "job ids", func(c *sauce.Client) (any, error) {
				return c.Jobs.ListJobIDs(cmd.Context())
			})
		},
	}
}

// customData turns key=value pairs into a custom-data object. Keys may use
// dotted paths ("env.region=eu") to build nested objects.
func customData(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	doc := []byte(`{}`)
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, ErrInvalidArgs.Msg("custom data must be key=value, got " + p)
		}
		var err error
		doc, err = sjson.SetBytes(doc, k, v)
		if err != nil {
			return nil, ErrInvalidArgs.MsgErr("invalid custom data key "+k, err)
		}
	}
	var out map[string]any
	if err := json.Unmarshal(doc, &out); err != nil {
		return nil, ErrInvalidArgs.Err(err)
	}
	return out, nil
}

func newJobsUpdateCmd(o *rootOptions) *cobra.Command {
	var (
		name, build, public string
		passed              bool
		tags, custom        []string
	)
	cmd := &cobra.Command{
		Use:   "update <job-id>",
		Short: "Change job attributes",
		Long: `Change job attributes. Only the given flags are sent.

Examples:
  sauce jobs update 53bd5a95 --passed --build 1.2.3 --tag smoke --custom env.region=eu`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update sauce.JobUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				update.Name = sauce.String(name)
			}
			if flags.Changed("build") {
				update.Build = sauce.String(build)
			}
			if flags.Changed("public") {
				update.Public = sauce.String(public)
			}
			if flags.Changed("passed") {
				update.Passed = sauce.Bool(passed)
			}
			update.Tags = tags
			data, err := customData(custom)
			if err != nil {
				return err
			}
			update.CustomData = data

			return o.call(cmd, "job", func(c *sauce.Client) (any, error) {
				return c.Jobs.UpdateJob(cmd.Context(), args[0], update)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Job name")
	cmd.Flags().StringVar(&build, "build", "", "Build the job belongs to")
	cmd.Flags().StringVar(&public, "public", "", "Visibility: public, public restricted, share, team or private")
	cmd.Flags().BoolVar(&passed, "passed", false, "Mark the job as passed (use --passed=false for failed)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag, may be repeated")
	cmd.Flags().StringArrayVar(&custom, "custom", nil, "Custom data as key=value, may be repeated")
	return cmd
}

func newJobsTokenCmd(o *rootOptions) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "token <job-id>",
		Short: "Print the share token of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.sauceClient()
			if err != nil {
				return err
			}
			return o.printText(cmd, "token", c.Jobs.AuthToken(args[0], date))
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Limit the token to a day (YYYY-MM-DD) or hour (YYYY-MM-DD-HH)")
	return cmd
}

func newJobsLinkCmd(o *rootOptions) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "link <job-id>",
		Short: "Print a link that shows the job without logging in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.sauceClient()
			if err != nil {
				return err
			}
			return o.printText(cmd, "link", c.Jobs.JobLink(args[0], date))
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Limit the link to a day (YYYY-MM-DD) or hour (YYYY-MM-DD-HH)")
	return cmd
}

func newJobsAssetURLCmd(o *rootOptions) *cobra.Command {
	var (
		date   string
		signed bool
	)
	cmd := &cobra.Command{
		Use:   "asset-url <job-id> <filename>",
		Short: "Print the download URL of a job asset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.sauceClient()
			if err != nil {
				return err
			}
			u := c.Jobs.JobAssetURL(args[0], args[1])
			if signed {
				u = c.Jobs.SignedAssetURL(args[0], args[1], date)
			}
			return o.printText(cmd, "url", u)
		},
	}
	cmd.Flags().BoolVar(&signed, "signed", false, "Append a share token so the URL works without credentials")
	cmd.Flags().StringVar(&date, "date", "", "Limit the signed URL to a day (YYYY-MM-DD) or hour (YYYY-MM-DD-HH)")
	return cmd
}
