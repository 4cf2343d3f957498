// Package cli implements the sauce command line tool on top of the
// github.com/sauceclient/sauceclient/pkg/sauce client.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sauceclient/sauceclient/internal/common/apperrors"
	"github.com/sauceclient/sauceclient/internal/common/logtrace"
	"github.com/sauceclient/sauceclient/pkg/sauce"
)

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootOptions carries the global flags and the lazily created client.
type rootOptions struct {
	jsonOutput bool
	configFile string
	debug      bool
	field      string
	timeout    time.Duration

	client *sauce.Client
}

// NewRootCmd returns the sauce command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "sauce [command] [flags]",
		Short: "Sauce CLI - A command line interface for the Sauce Labs REST API",
		Long: `Sauce CLI is a command line interface for the Sauce Labs REST API.
It manages jobs, tunnels, temporary storage and accounts, and reads
platform information and analytics.

Credentials are read from the config file, a .env file in the current
directory, or the SAUCE_USERNAME, SAUCE_ACCESS_KEY and SAUCE_HOST
environment variables.

Examples:
  # Store credentials
  sauce config set --username jdoe --access-key 0123-abcd

  # List recent jobs
  sauce jobs list --limit 10

  # Print only the status of a job
  sauce jobs get 53bd5a95f1bf4b0fa8c34e9b0a0e1f36 --field status

  # Share a job without exposing credentials
  sauce jobs link 53bd5a95f1bf4b0fa8c34e9b0a0e1f36`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logtrace.InitLoggerWithWriter(cmd.ErrOrStderr(), o.debug)
		},
		SilenceErrors: true, // Prevent Cobra from printing the error
		SilenceUsage:  true, // Prevent Cobra from printing usage on error
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&o.configFile, "config", "", "", "Path to configuration file to override default")
	rootCmd.PersistentFlags().BoolVarP(&o.jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&o.debug, "debug", "", false, "Log every request to stderr")
	rootCmd.PersistentFlags().StringVarP(&o.field, "field", "f", "", "Print only the value at this path of the response (e.g. 'status' or 'files.#.name')")
	rootCmd.PersistentFlags().DurationVarP(&o.timeout, "timeout", "", 0, "Timeout for each request, e.g. 30s (default no timeout)")

	rootCmd.AddCommand(
		newVersionCmd(o),
		newConfigCmd(o),
		newAccountCmd(o),
		newInfoCmd(o),
		newJobsCmd(o),
		newStorageCmd(o),
		newTunnelsCmd(o),
		newJSCmd(o),
		newAnalyticsCmd(o),
	)
	reportErrors(rootCmd, o)
	return rootCmd
}

// reportErrors wraps every subcommand so a failure is printed where it
// happens. The returned error still matches its cause and ErrAlreadyHandled,
// so Execute only has to report what never reached a RunE (bad flags,
// unknown commands).
func reportErrors(cmd *cobra.Command, o *rootOptions) {
	for _, c := range cmd.Commands() {
		reportErrors(c, o)
	}
	if cmd.RunE == nil || !cmd.HasParent() {
		return
	}
	run := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		err := run(c, args)
		if err == nil {
			return nil
		}
		reportError(c, err, o.jsonOutput)
		return fmt.Errorf("%w: %w", ErrAlreadyHandled, err)
	}
}

// sauceClient loads the configuration and builds the client on first use.
func (o *rootOptions) sauceClient() (*sauce.Client, error) {
	if o.client != nil {
		return o.client, nil
	}
	cfg, err := LoadConfig(o.configFile)
	if err != nil {
		return nil, err
	}
	opts := []sauce.ClientOption{sauce.WithLogger(log.Logger)}
	if o.timeout > 0 {
		opts = append(opts, sauce.WithTimeout(o.timeout))
	}
	o.client = sauce.NewClient(cfg.Credentials(), opts...)
	return o.client, nil
}

// call runs fn against the configured client and renders its result.
func (o *rootOptions) call(cmd *cobra.Command, heading string, fn func(c *sauce.Client) (any, error)) error {
	c, err := o.sauceClient()
	if err != nil {
		return err
	}
	res, err := fn(c)
	if err != nil {
		return requestError(err)
	}
	return o.render(cmd, heading, res)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, ErrAlreadyHandled) {
		os.Exit(1)
	}

	jsonOutput, _ := rootCmd.PersistentFlags().GetBool("json")
	reportError(rootCmd, err, jsonOutput)
	os.Exit(1)
}

func reportError(cmd *cobra.Command, err error, jsonOutput bool) {
	msg := err.Error()
	var appErr apperrors.Error
	if errors.As(err, &appErr) {
		msg = appErr.ErrorAll()
	}
	detail := errorDetail(err)

	if jsonOutput {
		kv := map[string]any{
			"error": msg,
		}
		if appErr != nil && appErr.StatusCode() != 0 {
			kv["status"] = appErr.StatusCode()
		}
		if detail != "" {
			kv["response"] = detail
		}
		_ = printJSON(cmd.OutOrStdout(), kv)
		return
	}
	errorLabel.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", msg)
	if detail != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), detail)
	}
}

func newVersionCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.printText(cmd, "version", sauce.Version)
		},
	}
}
