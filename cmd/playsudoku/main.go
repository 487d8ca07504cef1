package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "playsudoku",
		Short: "Interactive Sudoku with session tracking",
	}
	root.AddCommand(newServeCommand(), newPlayCommand())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
