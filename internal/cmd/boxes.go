package cmd

import (
	container "MyStorage/cmd"
	"MyStorage/internal/dto"
	"fmt"

	"github.com/spf13/cobra"
)

func newBoxesCommand(o *options) *cobra.Command {
	boxes := &cobra.Command{
		Use:     "boxes",
		Aliases: []string{"box"},
		Short:   "Manage boxes",
	}
	boxes.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List your boxes and the ones shared with you",
			Args:  cobra.NoArgs,
			RunE: o.run(func(cmd *cobra.Command, _ []string, app *container.App) error {
				list, err := app.BoxService.GetBoxes(cmd.Context())
				if err != nil {
					return err
				}
				return printBoxes(cmd.OutOrStdout(), list)
			}),
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show a box and its items",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(cmd *cobra.Command, args []string, app *container.App) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				box, err := app.BoxService.GetBox(cmd.Context(), id)
				if err != nil {
					return err
				}
				items, err := app.ItemService.GetItems(cmd.Context(), &id)
				if err != nil {
					return err
				}
				printBox(cmd.OutOrStdout(), box)
				fmt.Fprintln(cmd.OutOrStdout())
				return printItems(cmd.OutOrStdout(), items)
			}),
		},
		newBoxCreateCommand(o),
		newBoxUpdateCommand(o),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a box with everything in it",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(cmd *cobra.Command, args []string, app *container.App) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := app.BoxService.DeleteBox(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted box %d\n", id)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "share <id> <email>",
			Short: "Give another user access to a box",
			Args:  cobra.ExactArgs(2),
			RunE: o.run(func(cmd *cobra.Command, args []string, app *container.App) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := app.BoxService.ShareBox(cmd.Context(), id, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Shared box %d with %s\n", id, args[1])
				return nil
			}),
		},
		&cobra.Command{
			Use:   "unshare <id> <user-id>",
			Short: "Revoke a user's access to a box",
			Args:  cobra.ExactArgs(2),
			RunE: o.run(func(cmd *cobra.Command, args []string, app *container.App) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				userID, err := parseID(args[1])
				if err != nil {
					return err
				}
				if err := app.BoxService.UnshareBox(cmd.Context(), id, userID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed user %d from box %d\n", userID, id)
				return nil
			}),
		},
	)
	return boxes
}

func newBoxCreateCommand(o *options) *cobra.Command {
	var form dto.BoxCreateDTO
	var photo string
	command := &cobra.Command{
		Use:   "create",
		Short: "Create a box",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command, _ []string, app *container.App) error {
			if photo != "" {
				url, err := app.UploadService.UploadFile(cmd.Context(), photo)
				if err != nil {
					return err
				}
				form.PhotoURL = url
			}
			box, err := app.BoxService.CreateBox(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created box %d %q\n", box.ID, box.Name)
			return nil
		}),
	}
	flags := command.Flags()
	flags.StringVar(&form.Name, "name", "", "box name")
	flags.StringVar(&form.Description, "description", "", "what is inside")
	flags.StringVar(&form.Location, "location", "", "where the box is kept")
	flags.StringVar(&photo, "photo", "", "image file to upload as the box photo")
	return command
}

func newBoxUpdateCommand(o *options) *cobra.Command {
	var name, description, location, photo string
	command := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a box",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(cmd *cobra.Command, args []string, app *container.App) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			var update dto.BoxUpdateDTO
			if flags.Changed("name") {
				update.Name = &name
			}
			if flags.Changed("description") {
				update.Description = &description
			}
			if flags.Changed("location") {
				update.Location = &location
			}
			if photo != "" {
				url, err := app.UploadService.UploadFile(cmd.Context(), photo)
				if err != nil {
					return err
				}
				update.PhotoURL = &url
			}
			box, err := app.BoxService.UpdateBox(cmd.Context(), id, update)
			if err != nil {
				return err
			}
			printBox(cmd.OutOrStdout(), box)
			return nil
		}),
	}
	flags := command.Flags()
	flags.StringVar(&name, "name", "", "new name")
	flags.StringVar(&description, "description", "", "new description")
	flags.StringVar(&location, "location", "", "new location")
	flags.StringVar(&photo, "photo", "", "image file to upload as the new photo")
	return command
}
