package cmd

import (
	container "MyStorage/cmd"
	"MyStorage/internal/dto"
	"fmt"

	"github.com/spf13/cobra"
)

func newItemsCommand(o *options) *cobra.Command {
	items := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Manage items",
	}
	items.AddCommand(
		newItemListCommand(o),
		newItemSearchCommand(o),
		newItemAddCommand(o),
		newItemUpdateCommand(o),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete an item",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(cmd *cobra.Command, args []string, app *container.App) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := app.ItemService.DeleteItem(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %d\n", id)
				return nil
			}),
		},
	)
	return items
}

// boxFilter returns nil unless --box was given.
func boxFilter(cmd *cobra.Command, box uint) *uint {
	if !cmd.Flags().Changed("box") {
		return nil
	}
	return &box
}

func newItemListCommand(o *options) *cobra.Command {
	var box uint
	command := &cobra.Command{
		Use:   "list",
		Short: "List items, optionally of one box",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command, _ []string, app *container.App) error {
			list, err := app.ItemService.GetItems(cmd.Context(), boxFilter(cmd, box))
			if err != nil {
				return err
			}
			return printItems(cmd.OutOrStdout(), list)
		}),
	}
	command.Flags().UintVar(&box, "box", 0, "only items of this box id")
	return command
}

func newItemSearchCommand(o *options) *cobra.Command {
	var box uint
	command := &cobra.Command{
		Use:   "search <term>",
		Short: "Find items whose name or category contains term",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(cmd *cobra.Command, args []string, app *container.App) error {
			list, err := app.ItemService.SearchItems(cmd.Context(), args[0], boxFilter(cmd, box))
			if err != nil {
				return err
			}
			return printItems(cmd.OutOrStdout(), list)
		}),
	}
	command.Flags().UintVar(&box, "box", 0, "only search this box id")
	return command
}

func newItemAddCommand(o *options) *cobra.Command {
	var form dto.ItemCreateDTO
	var photo string
	command := &cobra.Command{
		Use:   "add",
		Short: "Put an item into a box",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command, _ []string, app *container.App) error {
			if photo != "" {
				url, err := app.UploadService.UploadFile(cmd.Context(), photo)
				if err != nil {
					return err
				}
				form.PhotoURL = url
			}
			item, err := app.ItemService.CreateItem(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added item %d %q to box %d\n", item.ID, item.Name, item.BoxID)
			return nil
		}),
	}
	flags := command.Flags()
	flags.UintVar(&form.BoxID, "box", 0, "box id")
	flags.StringVar(&form.Name, "name", "", "item name")
	flags.StringVar(&form.Category, "category", "", "clothing, electronics, books, kitchenware, tools, toys, sports, decor or other")
	flags.StringVar(&form.Description, "description", "", "description")
	flags.StringVar(&photo, "photo", "", "image file to upload as the item photo")
	return command
}

func newItemUpdateCommand(o *options) *cobra.Command {
	var name, description, category, photo string
	command := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of an item",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(cmd *cobra.Command, args []string, app *container.App) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			var update dto.ItemUpdateDTO
			if flags.Changed("name") {
				update.Name = &name
			}
			if flags.Changed("description") {
				update.Description = &description
			}
			if flags.Changed("category") {
				update.Category = &category
			}
			if photo != "" {
				url, err := app.UploadService.UploadFile(cmd.Context(), photo)
				if err != nil {
					return err
				}
				update.PhotoURL = &url
			}
			item, err := app.ItemService.UpdateItem(cmd.Context(), id, update)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated item %d %q\n", item.ID, item.Name)
			return nil
		}),
	}
	flags := command.Flags()
	flags.StringVar(&name, "name", "", "new name")
	flags.StringVar(&description, "description", "", "new description")
	flags.StringVar(&category, "category", "", "new category")
	flags.StringVar(&photo, "photo", "", "image file to upload as the new photo")
	return command
}
