package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tyler180/nfl-odds-board/internal/odds"
)

type DynamoDBAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DefaultBoard is the partition written by scheduled runs.
const DefaultBoard = "nfl"

// Game is one stored board item.
type Game struct {
	Key        string
	Away       string
	Home       string
	Fields     map[string]string
	FieldOrder []string
	UpdatedAt  time.Time
	ExpiresAt  time.Time
}

// boardItem is the stored shape of one game. Fields holds the flattened
// record; FieldOrder keeps its column order.
type boardItem struct {
	Board      string            `dynamodbav:"Board"`      // PK
	MatchupKey string            `dynamodbav:"MatchupKey"` // SK
	Away       string            `dynamodbav:"Away"`
	Home       string            `dynamodbav:"Home"`
	Fields     map[string]string `dynamodbav:"Fields"`
	FieldOrder []string          `dynamodbav:"FieldOrder"`
	UpdatedAt  int64             `dynamodbav:"UpdatedAt"`
	ExpiresAt  int64             `dynamodbav:"ExpiresAt"` // TTL attribute
}

// Latest board: PK=Board (S), SK=MatchupKey (S). Every run overwrites the
// items of the games it saw; stale games age out through the ExpiresAt TTL.
func PutBoard(ctx context.Context, ddb DynamoDBAPI, table, board string, set odds.RecordSet, ttl time.Duration, now time.Time) (int, error) {
	if set.Len() == 0 {
		return 0, nil
	}
	if board == "" {
		board = DefaultBoard
	}
	key := set.Schema().IndexKind(odds.KindMatchup)
	if key < 0 {
		return 0, fmt.Errorf("board %s: record set has no matchup column", board)
	}

	header, rows := set.Flatten()

	// one item per key; a repeated key in one BatchWriteItem call is a ValidationException
	seen := make(map[string]struct{}, len(rows))
	reqs := make([]types.WriteRequest, 0, len(rows))
	for i, row := range rows {
		p := set.Record(i).Value(key).Pair
		mk := odds.MatchupKey(p)
		if mk == "" {
			continue
		}
		if _, dup := seen[mk]; dup {
			continue
		}
		seen[mk] = struct{}{}

		fields := make(map[string]string, len(header))
		for j, f := range header {
			fields[f] = row[j]
		}
		item, err := attributevalue.MarshalMap(boardItem{
			Board:      board,
			MatchupKey: mk,
			Away:       odds.CanonicalTeam(p.Away),
			Home:       odds.CanonicalTeam(p.Home),
			Fields:     fields,
			FieldOrder: header,
			UpdatedAt:  now.Unix(),
			ExpiresAt:  now.Add(ttl).Unix(),
		})
		if err != nil {
			return 0, fmt.Errorf("marshal %s: %w", mk, err)
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: item}})
	}

	const maxBatch = 25
	for i := 0; i < len(reqs); i += maxBatch {
		end := min(i+maxBatch, len(reqs))
		if err := batchWriteWithRetry(ctx, ddb, table, reqs[i:end]); err != nil {
			return i, fmt.Errorf("batch write board %s: %w", board, err)
		}
	}
	return len(reqs), nil
}

// LoadBoard reads every item of a board, sorted by matchup key. Items past
// their ExpiresAt that the TTL sweeper has not removed yet are skipped.
func LoadBoard(ctx context.Context, ddb DynamoDBAPI, table, board string, now time.Time) ([]Game, error) {
	if board == "" {
		board = DefaultBoard
	}
	var games []Game
	var lastKey map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(table),
			KeyConditionExpression:    aws.String("#B = :b"),
			ExpressionAttributeNames:  map[string]string{"#B": "Board"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":b": &types.AttributeValueMemberS{Value: board}},
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query board %s: %w", board, err)
		}
		var items []boardItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("decode board %s: %w", board, err)
		}
		for _, it := range items {
			g := it.game()
			if !g.ExpiresAt.IsZero() && !now.Before(g.ExpiresAt) {
				continue
			}
			games = append(games, g)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	sort.Slice(games, func(i, j int) bool { return games[i].Key < games[j].Key })
	return games, nil
}

func (it boardItem) game() Game {
	g := Game{
		Key:        it.MatchupKey,
		Away:       it.Away,
		Home:       it.Home,
		Fields:     it.Fields,
		FieldOrder: it.FieldOrder,
		UpdatedAt:  unixTime(it.UpdatedAt),
		ExpiresAt:  unixTime(it.ExpiresAt),
	}
	if g.Fields == nil {
		g.Fields = map[string]string{}
	}
	return g
}

func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}

// Rows lays the games out as a header (the first game's field order) and
// one row per game.
func Rows(games []Game) ([]string, [][]string) {
	if len(games) == 0 {
		return nil, nil
	}
	header := games[0].FieldOrder
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		row := make([]string, len(header))
		for i, f := range header {
			row[i] = g.Fields[f]
		}
		rows = append(rows, row)
	}
	return header, rows
}

func batchWriteWithRetry(ctx context.Context, ddb DynamoDBAPI, table string, reqs []types.WriteRequest) error {
	input := &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{table: reqs},
	}
	const maxAttempts = 6
	backoff := 120 * time.Millisecond

	for attempt := 0; attempt < maxAttempts; attempt++ {
		out, err := ddb.BatchWriteItem(ctx, input)
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems) == 0 {
			return nil
		}
		input.RequestItems = out.UnprocessedItems
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		if backoff < 2*time.Second {
			backoff += 120 * time.Millisecond
		}
	}
	return fmt.Errorf("unprocessed items remained after retries for table %s", table)
}
