package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	appboard "github.com/tyler180/nfl-odds-board/internal/app/board"
)

func main() {
	log.SetFlags(0)
	lambda.Start(appboard.LambdaEntrypoint)
}
