package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	appboard "github.com/tyler180/nfl-odds-board/internal/app/board"
	"github.com/tyler180/nfl-odds-board/internal/odds"
)

func init() {
	showCmd.Flags().StringVar(&showBook, "book", "", "only show this sportsbook's lines")
	showCmd.Flags().StringVar(&showLayout, "layout", "", "print one page before the merge: moneyline or spread")
	rootCmd.AddCommand(showCmd)
}

var showBook, showLayout string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetches and merges the odds tables and prints the board without writing anything.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, sp, board, rep, err := appboard.Fetch(cmd.Context(), cfg, appboard.Deps{Logger: logger})
		if err != nil {
			return err
		}
		if showLayout != "" {
			layout, err := odds.ParseLayout(showLayout)
			if err != nil {
				return err
			}
			board = ml
			if layout == odds.Spread {
				board = sp
			}
		}
		if showBook != "" {
			board = odds.Project(board, showBook)
		}
		printTable(board.Flatten())

		for _, p := range rep.UnmatchedMoneyline {
			fmt.Printf("no spread line: %s @ %s\n", p.Away, p.Home)
		}
		for _, p := range rep.UnmatchedSpread {
			fmt.Printf("no moneyline: %s @ %s\n", p.Away, p.Home)
		}
		return nil
	},
}
