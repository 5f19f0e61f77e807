package cmd

import (
	container "MyStorage/cmd"
	"MyStorage/internal/api"
	"bufio"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSyncCommand(o *options) *cobra.Command {
	var once bool
	command := &cobra.Command{
		Use:   "sync",
		Short: "Refresh boxes on the configured schedule until interrupted",
		Long: "Refresh boxes on the configured schedule until interrupted. " +
			"Press enter to refresh immediately.",
		Args: cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command, _ []string, app *container.App) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var mutex sync.Mutex
			out := cmd.OutOrStdout()
			results := make(chan error, 1)
			refresh := func(ctx context.Context) {
				boxes, err := app.BoxService.GetBoxes(ctx)
				if err == nil {
					mutex.Lock()
					fmt.Fprintf(out, "%s  %d boxes\n", time.Now().Format(time.TimeOnly), len(boxes))
					mutex.Unlock()
				} else if ctx.Err() == nil {
					app.LogService.Log.WithFields(logrus.Fields{
						"error": err.Error(),
					}).Warn("sync failed")
				}
				if once || errors.Is(err, api.ErrUnauthorized) {
					select {
					case results <- err:
					default:
					}
				}
			}

			if err := app.SyncService.Start(ctx, refresh); err != nil {
				return err
			}
			defer app.SyncService.Stop()

			if !once {
				go func() {
					scanner := bufio.NewScanner(cmd.InOrStdin())
					for scanner.Scan() {
						if err := app.SyncService.ForceSync(); err != nil {
							return
						}
					}
				}()
			}

			select {
			case err := <-results:
				if errors.Is(err, api.ErrUnauthorized) {
					return fmt.Errorf("session ended, log in again: %w", err)
				}
				return err
			case <-ctx.Done():
				return nil
			}
		}),
	}
	command.Flags().BoolVar(&once, "once", false, "refresh a single time and exit")
	return command
}
