package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	appboard "github.com/tyler180/nfl-odds-board/internal/app/board"
)

func init() {
	runCmd.Flags().StringVar(&runMode, "mode", "", "tsv | email | board | all (default: MODE or tsv)")
	runCmd.Flags().StringVar(&runBook, "book", "", "sportsbook shown in the email")
	rootCmd.AddCommand(runCmd)
}

var runMode, runBook string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetches both odds tables, merges them and writes the configured outputs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if runMode != "" {
			cfg.Mode = runMode
		}
		if runBook != "" {
			cfg.Email.Book = runBook
		}
		deps, err := appboard.AWSDeps(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		deps.Logger = logger

		res, err := appboard.Run(cmd.Context(), cfg, deps)
		if err != nil {
			return err
		}
		b, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(b))
		return nil
	},
}
