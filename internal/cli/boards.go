package cli

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sketchwall/sketchwall/internal/store"
)

// newBoardsCmd creates the boards command group for the local file store.
// These commands operate on the same directory the server's file backend
// uses, so boards edited over the API are visible here and vice versa.
func newBoardsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "boards",
		Short: "Inspect and manage boards in the local file store",
	}

	cmd.PersistentFlags().StringVar(&dir, "dir", "", "board directory (default: ~/.config/sketchwall/boards)")

	cmd.AddCommand(newBoardsListCmd(&dir))
	cmd.AddCommand(newBoardsBrowseCmd(&dir))
	cmd.AddCommand(newBoardsPathCmd(&dir))
	cmd.AddCommand(newBoardsDeleteCmd(&dir))

	return cmd
}

// newBoardsListCmd creates the "boards list" subcommand.
func newBoardsListCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List boards in the local file store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := store.NewFileStore(*dir)
			if err != nil {
				return err
			}
			infos, err := fs.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				printInfo("No boards yet")
				printNextStep("Create one", "sketchwall serve")
				return nil
			}

			shapes := 0
			for _, info := range infos {
				name := info.Name
				if name == "" {
					name = info.ID
				}
				fmt.Println("  " + StyleValue.Render(name) +
					"  " + StyleDim.Render(fmt.Sprintf("%s · %d shapes · %s",
					info.ID, info.Shapes, formatRelativeTime(info.UpdatedAt))))
				shapes += info.Shapes
			}
			printNewline()
			printStats(fmt.Sprintf("%d boards", len(infos)), fmt.Sprintf("%d shapes", shapes))
			return nil
		},
	}
}

// newBoardsBrowseCmd creates the "boards browse" subcommand, an
// interactive picker over the local store.
func newBoardsBrowseCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Pick a board interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := store.NewFileStore(*dir)
			if err != nil {
				return err
			}
			infos, err := fs.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				printInfo("No boards yet")
				return nil
			}

			model, err := tea.NewProgram(newBoardListModel(infos)).Run()
			if err != nil {
				return fmt.Errorf("run picker: %w", err)
			}
			selected := model.(boardListModel).Selected
			if selected == nil {
				return nil // dismissed without choosing
			}

			return showBoard(cmd.Context(), fs, selected.ID)
		},
	}
}

// showBoard prints the details of one stored board and where to go next.
func showBoard(ctx context.Context, fs *store.FileStore, id string) error {
	board, err := fs.Get(ctx, id)
	if err != nil {
		return err
	}
	path := filepath.Join(fs.Path(), id+".json")

	printNewline()
	printKeyValue("id", board.ID)
	if board.Name != "" {
		printKeyValue("name", board.Name)
	}
	printKeyValue("shapes", fmt.Sprintf("%d", len(board.Shapes)))
	printKeyValue("updated", formatRelativeTime(board.UpdatedAt))
	printKeyValue("file", path)
	printNewline()
	printNextStep("Render it", fmt.Sprintf("sketchwall render %s", path))
	printNextStep("Export it", fmt.Sprintf("sketchwall export excalidraw %s", path))
	return nil
}

// newBoardsPathCmd creates the "boards path" subcommand.
func newBoardsPathCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the board directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := store.NewFileStore(*dir)
			if err != nil {
				return err
			}
			fmt.Println(fs.Path())
			return nil
		},
	}
}

// newBoardsDeleteCmd creates the "boards delete" subcommand.
func newBoardsDeleteCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [board-id]",
		Short: "Delete a board from the local file store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := store.NewFileStore(*dir)
			if err != nil {
				return err
			}
			if err := fs.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted board %s", args[0])
			return nil
		},
	}
}
