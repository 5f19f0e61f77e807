package cmd

import (
	"MyStorage/internal/state"
	"MyStorage/internal/tui"

	"github.com/spf13/cobra"
)

func newTUICommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive interface (default)",
		Args:  cobra.NoArgs,
		RunE:  o.runTUI,
	}
}

// runTUI sends logs to a file since the terminal belongs to the interface.
func (o *options) runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, cleanup, err := o.open(ctx, "file")
	if err != nil {
		return err
	}
	defer cleanup()

	controller := state.NewController(ctx, app.Session, app.AuthService, app.BoxService,
		app.ItemService, app.UploadService, app.LogService)
	model := tui.NewModel(ctx, controller, app.SyncService, app.LogService)
	return tui.Run(ctx, model, app.Session)
}
