package cmd

import (
	container "MyStorage/cmd"
	"MyStorage/internal/config"
	"MyStorage/internal/server"
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Initializer assembles the application for one command invocation.
type Initializer func(path config.FilePath, overrides config.Overrides) (*container.App, func(), error)

type options struct {
	initialize Initializer
	configPath string
	apiURL     string
	demo       bool
}

func NewRootCommand(initialize Initializer) *cobra.Command {
	o := &options{initialize: initialize}
	root := &cobra.Command{
		Use:          "mystorage",
		Short:        "Keep track of what is in your storage boxes",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         o.runTUI,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&o.configPath, "config", config.DefaultFile, "path to the yaml configuration file")
	flags.StringVar(&o.apiURL, "api-url", "", "API base URL, wins over the config file and "+config.APIURLEnv)
	flags.BoolVar(&o.demo, "demo", false, "use an in-process demo backend signed in as the demo account")

	root.AddCommand(
		newTUICommand(o),
		newRegisterCommand(o),
		newLoginCommand(o),
		newLogoutCommand(o),
		newWhoamiCommand(o),
		newBoxesCommand(o),
		newItemsCommand(o),
		newUploadCommand(o),
		newSyncCommand(o),
	)
	return root
}

func (o *options) open(ctx context.Context, logOutput string) (*container.App, func(), error) {
	app, cleanup, err := o.initialize(config.FilePath(o.configPath), config.Overrides{
		APIURL:    o.apiURL,
		Demo:      o.demo,
		LogOutput: logOutput,
	})
	if err != nil {
		return nil, nil, err
	}
	if app.Configuration.API.Demo {
		if err := app.AuthService.Login(ctx, server.DemoEmail, server.DemoPassword); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("demo login: %w", err)
		}
	}
	return app, cleanup, nil
}

// run wraps a command body with application setup and teardown.
func (o *options) run(fn func(cmd *cobra.Command, args []string, app *container.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, cleanup, err := o.open(cmd.Context(), "")
		if err != nil {
			return err
		}
		defer cleanup()
		return fn(cmd, args, app)
	}
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}
