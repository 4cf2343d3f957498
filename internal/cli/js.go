package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sauceclient/sauceclient/pkg/sauce"
)

// parsePlatforms turns "os,browser,version" values into platform triples.
func parsePlatforms(values []string) ([][]string, error) {
	out := make([][]string, 0, len(values))
	for _, v := range values {
		parts := strings.Split(v, ",")
		if len(parts) != 3 {
			return nil, ErrInvalidArgs.Msg("platform must be os,browser,version, got " + v)
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		out = append(out, parts)
	}
	return out, nil
}

func newJSCmd(o *rootOptions) *cobra.Command {
	jsCmd := &cobra.Command{
		Use:   "js",
		Short: "Run JavaScript unit tests",
	}

	var (
		req       sauce.JSTestRequest
		platforms []string
	)
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start unit tests on one or more platforms",
		Long: `Start the unit tests served at a URL on one or more platforms.

Examples:
  sauce js run --url https://example.com/tests.html --framework jasmine \
    --platform "Windows 10,chrome,latest" --platform "macOS 13,safari,16"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePlatforms(platforms)
			if err != nil {
				return err
			}
			req.Platforms = p
			return o.call(cmd, "js tests", func(c *sauce.Client) (any, error) {
				return c.JavaScript.Run(cmd.Context(), req)
			})
		},
	}
	runCmd.Flags().StringVar(&req.URL, "url", "", "URL of the test page")
	runCmd.Flags().StringVar(&req.Framework, "framework", "", "Test framework: qunit, jasmine, YUI Test, mocha or custom")
	runCmd.Flags().StringArrayVar(&platforms, "platform", nil, "Platform as os,browser,version, may be repeated")
	_ = runCmd.MarkFlagRequired("url")
	_ = runCmd.MarkFlagRequired("framework")

	statusCmd := &cobra.Command{
		Use:   "status <test-id>...",
		Short: "Show the progress of started unit tests",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "js test status", func(c *sauce.Client) (any, error) {
				return c.JavaScript.Status(cmd.Context(), args)
			})
		},
	}

	jsCmd.AddCommand(runCmd, statusCmd)
	return jsCmd
}
