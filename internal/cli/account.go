package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sauceclient/sauceclient/pkg/sauce"
)

func newAccountCmd(o *rootOptions) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect and manage the account and its sub accounts",
	}

	simple := []struct {
		use, short string
		fn         func(ctx context.Context, a *sauce.Account) (any, error)
	}{
		{"user", "Show the account record", func(ctx context.Context, a *sauce.Account) (any, error) { return a.GetUser(ctx) }},
		{"concurrency", "Show concurrency limits and usage", func(ctx context.Context, a *sauce.Account) (any, error) { return a.GetConcurrency(ctx) }},
		{"subaccounts", "List sub accounts", func(ctx context.Context, a *sauce.Account) (any, error) { return a.GetSubaccounts(ctx) }},
		{"siblings", "List sibling accounts", func(ctx context.Context, a *sauce.Account) (any, error) { return a.GetSiblings(ctx) }},
		{"subaccount-info", "Show information about sub accounts", func(ctx context.Context, a *sauce.Account) (any, error) { return a.GetSubaccountInfo(ctx) }},
		{"activity", "Show running and queued jobs per sub account", func(ctx context.Context, a *sauce.Account) (any, error) { return a.GetActivity(ctx) }},
		{"change-access-key", "Generate a new access key", func(ctx context.Context, a *sauce.Account) (any, error) { return a.ChangeAccessKey(ctx) }},
	}
	for _, s := range simple {
		s := s
		accountCmd.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.call(cmd, s.use, func(c *sauce.Client) (any, error) {
					return s.fn(cmd.Context(), c.Account)
				})
			},
		})
	}

	accountCmd.AddCommand(newUsageCmd(o), newCreateUserCmd(o))
	return accountCmd
}

func newUsageCmd(o *rootOptions) *cobra.Command {
	var opts sauce.UsageOptions
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show historical usage",
		Long: `Show historical usage as [date, [jobs, seconds]] entries.

Examples:
  sauce account usage --start 2024-01-01 --end 2024-01-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "usage", func(c *sauce.Client) (any, error) {
				return c.Account.GetUsage(cmd.Context(), opts)
			})
		},
	}
	cmd.Flags().StringVar(&opts.Start, "start", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.End, "end", "", "Last day, YYYY-MM-DD")
	return cmd
}

func newCreateUserCmd(o *rootOptions) *cobra.Command {
	var user sauce.NewUser
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a sub account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "create user", func(c *sauce.Client) (any, error) {
				return c.Account.CreateUser(cmd.Context(), user)
			})
		},
	}
	cmd.Flags().StringVar(&user.Username, "username", "", "User name of the new account")
	cmd.Flags().StringVar(&user.Password, "password", "", "Password of the new account")
	cmd.Flags().StringVar(&user.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&user.Email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
