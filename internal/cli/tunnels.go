package cli

import (
	"github.com/spf13/cobra"

	"github.com/sauceclient/sauceclient/pkg/sauce"
)

func newTunnelsCmd(o *rootOptions) *cobra.Command {
	tunnelsCmd := &cobra.Command{
		Use:   "tunnels",
		Short: "Manage Sauce Connect tunnels",
	}

	tunnelsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the ids of running tunnels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "tunnels", func(c *sauce.Client) (any, error) {
				return c.Tunnels.GetTunnels(cmd.Context())
			})
		},
	})

	tunnelsCmd.AddCommand(&cobra.Command{
		Use:   "get <tunnel-id>",
		Short: "Show a tunnel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "tunnel", func(c *sauce.Client) (any, error) {
				return c.Tunnels.GetTunnel(cmd.Context(), args[0])
			})
		},
	})

	tunnelsCmd.AddCommand(&cobra.Command{
		Use:   "delete <tunnel-id>",
		Short: "Shut down a tunnel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "tunnel deleted", func(c *sauce.Client) (any, error) {
				return c.Tunnels.DeleteTunnel(cmd.Context(), args[0])
			})
		},
	})
	return tunnelsCmd
}
