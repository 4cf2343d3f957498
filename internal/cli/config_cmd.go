package cli

import (
	"github.com/spf13/cobra"
)

func newConfigCmd(o *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the stored credentials",
	}
	configCmd.AddCommand(newConfigSetCmd(o), newConfigShowCmd(o))
	return configCmd
}

func newConfigSetCmd(o *rootOptions) *cobra.Command {
	var username, accessKey, host string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store credentials in the config file",
		Long: `Store credentials in the config file. Only the given values are changed.

Examples:
  # Store credentials for the default host
  sauce config set --username jdoe --access-key 0123-abcd

  # Use the EU data center
  sauce config set --host eu-central-1.saucelabs.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ReadConfig(o.configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("username") {
				cfg.Username = username
			}
			if cmd.Flags().Changed("access-key") {
				cfg.AccessKey = accessKey
			}
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if err := cfg.ValidateConfig(); err != nil {
				return err
			}
			if err := cfg.WriteConfig(o.configFile); err != nil {
				return err
			}
			if o.jsonOutput {
				return printJSON(cmd.OutOrStdout(), map[string]any{"result": "ok"})
			}
			okLabel.Fprintln(cmd.OutOrStdout(), "Configuration saved")
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Sauce Labs user name")
	cmd.Flags().StringVarP(&accessKey, "access-key", "k", "", "Sauce Labs access key")
	cmd.Flags().StringVarP(&host, "host", "", "", "API host (default saucelabs.com)")
	return cmd
}

func newConfigShowCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration with the access key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(o.configFile)
			if err != nil {
				return err
			}
			view := map[string]string{
				"username":   cfg.Username,
				"access_key": cfg.maskedKey(),
				"server":     cfg.Credentials().ServerURL(),
			}
			return o.render(cmd, "configuration", view)
		},
	}
}
