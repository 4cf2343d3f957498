package cli

import (
	"github.com/spf13/cobra"

	"github.com/sauceclient/sauceclient/pkg/sauce"
)

func newInfoCmd(o *rootOptions) *cobra.Command {
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Service status and supported platforms",
	}

	infoCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether the service is operational",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "status", func(c *sauce.Client) (any, error) {
				return c.Information.GetStatus(cmd.Context())
			})
		},
	})

	infoCmd.AddCommand(&cobra.Command{
		Use:   "platforms [automation-api]",
		Short: "List supported platforms",
		Long: `List supported platforms for an automation API: all, appium, selenium-rc or webdriver.

Examples:
  sauce info platforms webdriver --field '#.long_name'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := ""
			if len(args) == 1 {
				api = args[0]
			}
			return o.call(cmd, "platforms", func(c *sauce.Client) (any, error) {
				return c.Information.GetPlatforms(cmd.Context(), api)
			})
		},
	})

	infoCmd.AddCommand(&cobra.Command{
		Use:   "appium-eol",
		Short: "Show end of life dates for Appium versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "appium end of life", func(c *sauce.Client) (any, error) {
				return c.Information.GetAppiumEOLDates(cmd.Context())
			})
		},
	})
	return infoCmd
}
