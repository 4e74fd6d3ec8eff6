package repository

import (
	"context"
	"errors"
	"strconv"

	"procurehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "sequences"

var errSequenceCounterMissing = errors.New("sequence counter missing after increment")

// SequenceDynamoRepository hands out document numbers from a counters table.
//
// Table requirements:
//   - PK: name (string) — one document per prefix (PR, PO, GR, INV)
//
// Next is a single atomic ADD, so concurrent creations can never mint the
// same number; a fresh counter starts at 1.
type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, name string) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #current :one"),
		ExpressionAttributeNames: map[string]string{
			"#current": "current",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	raw, ok := out.Attributes["current"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errSequenceCounterMissing
	}
	return strconv.Atoi(raw.Value)
}
