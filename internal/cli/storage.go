package cli

import (
	"github.com/spf13/cobra"

	"github.com/sauceclient/sauceclient/pkg/sauce"
)

func newStorageCmd(o *rootOptions) *cobra.Command {
	storageCmd := &cobra.Command{
		Use:   "storage",
		Short: "Upload and list files in temporary storage",
	}

	var overwrite bool
	uploadCmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file to temporary storage",
		Long: `Upload a file to temporary storage under its base name. Files are kept for a limited time
and can be referenced from capabilities as sauce-storage:<name>.

Examples:
  sauce storage upload ./build/app.apk --overwrite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "upload", func(c *sauce.Client) (any, error) {
				return c.Storage.UploadFile(cmd.Context(), args[0], overwrite)
			})
		},
	}
	uploadCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace a file with the same name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List files in temporary storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, "stored files", func(c *sauce.Client) (any, error) {
				return c.Storage.GetStoredFiles(cmd.Context())
			})
		},
	}

	storageCmd.AddCommand(uploadCmd, listCmd)
	return storageCmd
}
