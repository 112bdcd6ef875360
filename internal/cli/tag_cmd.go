package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mbenedek/focal/internal/cli/formatter"
	"github.com/mbenedek/focal/internal/domain"
	"github.com/spf13/cobra"
)

func newTagCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage the tag catalog",
	}

	cmd.AddCommand(
		newTagAddCmd(app),
		newTagListCmd(app),
		newTagRemoveCmd(app),
	)

	return cmd
}

func newTagAddCmd(app *App) *cobra.Command {
	var icon, color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := &domain.Tag{
				ID:        uuid.New().String(),
				Name:      args[0],
				Icon:      icon,
				Color:     color,
				CreatedAt: time.Now().UTC(),
			}
			if err := app.Tags.Create(context.Background(), tag); err != nil {
				return err
			}
			fmt.Printf("Added tag %s (%s)\n", tag.Name, tag.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "●", "Tag icon")
	cmd.Flags().StringVar(&color, "color", "#83a598", "Tag color (hex)")

	return cmd
}

func newTagListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags in catalog order",
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := app.Tags.List(context.Background())
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				fmt.Println(formatter.Dim("No tags yet."))
				return nil
			}

			headers := []string{"TAG", "COLOR", "ID"}
			rows := make([][]string, 0, len(tags))
			for _, tag := range tags {
				rows = append(rows, []string{
					formatter.TagStyle(tag).Render(tag.Icon + " " + tag.Name),
					tag.Color,
					formatter.Dim(tag.ID),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newTagRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <tag-id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tags.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed tag %s\n", args[0])
			return nil
		},
	}
}
