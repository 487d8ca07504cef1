package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"svw.info/playsudoku/internal/adapters/tui"
	"svw.info/playsudoku/internal/generator"
	"svw.info/playsudoku/internal/infrastructure/storage"
	"svw.info/playsudoku/internal/solver"
	"svw.info/playsudoku/internal/usecase"
	"svw.info/playsudoku/internal/validator"
)

func newPlayCommand() *cobra.Command {
	var persist string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play Sudoku in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			lipgloss.SetColorProfile(termenv.ANSI256)

			uc := usecase.NewService(
				generator.NewRandomized(),
				solver.NewBacktracking(),
				validator.New(),
				storage.NewFS(persist),
			)
			p := tea.NewProgram(tui.NewMenu(uc, 0, 0), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				log.Error("tui exited", "error", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	return cmd
}
