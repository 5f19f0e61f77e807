package cmd

import (
	container "MyStorage/cmd"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newUploadCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(cmd *cobra.Command, args []string, app *container.App) error {
			info, err := os.Stat(args[0])
			if err != nil {
				return err
			}
			url, err := app.UploadService.UploadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", url, humanize.IBytes(uint64(info.Size())))
			return nil
		}),
	}
}
