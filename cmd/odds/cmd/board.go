package cmd

import (
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spf13/cobra"

	"github.com/tyler180/nfl-odds-board/internal/store"
)

func init() {
	boardCmd.Flags().StringVar(&boardName, "board", "", "board partition (default: BOARD_NAME or nfl)")
	rootCmd.AddCommand(boardCmd)
}

var boardName string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Prints the latest board stored in DynamoDB.",
	RunE: func(cmd *cobra.Command, args []string) error {
		awsCfg, err := awsconfig.LoadDefaultConfig(cmd.Context())
		if err != nil {
			return fmt.Errorf("aws config: %w", err)
		}
		name := cfg.Board.Name
		if boardName != "" {
			name = boardName
		}

		games, err := store.LoadBoard(cmd.Context(), dynamodb.NewFromConfig(awsCfg), cfg.Board.Table, name, time.Now())
		if err != nil {
			return err
		}
		if len(games) == 0 {
			fmt.Printf("board %s in %s is empty\n", name, cfg.Board.Table)
			return nil
		}
		printTable(store.Rows(games))
		fmt.Printf("updated %s\n", games[0].UpdatedAt.Format(time.RFC1123))
		return nil
	},
}
