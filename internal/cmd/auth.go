package cmd

import (
	container "MyStorage/cmd"
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCommand(o *options) *cobra.Command {
	var username, email, password string
	command := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command, _ []string, app *container.App) error {
			user, err := app.AuthService.Register(cmd.Context(), username, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s <%s>\n", user.Username, user.Email)
			return nil
		}),
	}
	command.Flags().StringVar(&username, "username", "", "user name")
	command.Flags().StringVar(&email, "email", "", "email address")
	command.Flags().StringVar(&password, "password", "", "password")
	_ = command.MarkFlagRequired("username")
	_ = command.MarkFlagRequired("email")
	_ = command.MarkFlagRequired("password")
	return command
}

func newLoginCommand(o *options) *cobra.Command {
	var email, password string
	command := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command, _ []string, app *container.App) error {
			if err := app.AuthService.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in")
			return nil
		}),
	}
	command.Flags().StringVar(&email, "email", "", "email address")
	command.Flags().StringVar(&password, "password", "", "password")
	_ = command.MarkFlagRequired("email")
	_ = command.MarkFlagRequired("password")
	return command
}

func newLogoutCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command, _ []string, app *container.App) error {
			if err := app.AuthService.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		}),
	}
}

func newWhoamiCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in user",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command, _ []string, app *container.App) error {
			user, err := app.AuthService.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (id %d)\n", user.Username, user.Email, user.ID)
			return nil
		}),
	}
}
