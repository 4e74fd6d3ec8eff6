package repository

import (
	"context"
	"errors"
	"strconv"

	"procurehub/internal/domain/entities"
	"procurehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReceiptsTableName = "goods_receipts"

type receiptItem struct {
	ID           string           `dynamodbav:"id"`
	GRNumber     string           `dynamodbav:"gr_number"`
	POID         string           `dynamodbav:"po_id"`
	PONumber     string           `dynamodbav:"po_number"`
	Items        []lineItemRecord `dynamodbav:"items"`
	ReceivedBy   string           `dynamodbav:"received_by"`
	ReceivedDate string           `dynamodbav:"received_date"`
	Notes        string           `dynamodbav:"notes,omitempty"`
	Status       string           `dynamodbav:"status"`
	CreatedAt    string           `dynamodbav:"created_at"`
}

// ReceiptDynamoRepository persists goods receipts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - the items table (see ItemDynamoRepository) must live in the same
//     account/region, since receipt creation writes both in one transaction.
type ReceiptDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	itemsTableName string
}

var _ interfaces.IReceiptRepository = (*ReceiptDynamoRepository)(nil)

func NewReceiptDynamoRepository(ddb *dynamodb.Client) *ReceiptDynamoRepository {
	return &ReceiptDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("GOODS_RECEIPTS_TABLE", defaultReceiptsTableName),
		itemsTableName: getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

// CreateWithInventory writes the receipt and every per-line quantity
// increment as a single TransactWriteItems call. Each increment is an
// atomic ADD guarded by item existence, so receipts accumulate stock and a
// receipt can never land without its inventory side effect. A cancelled
// transaction (missing item) returns the zero value with a nil error.
func (r *ReceiptDynamoRepository) CreateWithInventory(ctx context.Context, gr entities.GoodsReceipt) (entities.GoodsReceipt, error) {
	av, err := attributevalue.MarshalMap(toReceiptItem(gr))
	if err != nil {
		return entities.GoodsReceipt{}, err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
	}
	for _, line := range gr.Items {
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.itemsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: line.ItemID},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("ADD #quantity :received"),
				ExpressionAttributeNames: map[string]string{
					"#id":       "id",
					"#quantity": "quantity",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":received": &types.AttributeValueMemberN{Value: strconv.Itoa(line.Quantity)},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.GoodsReceipt{}, nil
				}
			}
		}
		return entities.GoodsReceipt{}, err
	}
	return gr, nil
}

func (r *ReceiptDynamoRepository) List(ctx context.Context) ([]entities.GoodsReceipt, error) {
	grs := []entities.GoodsReceipt{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it receiptItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			grs = append(grs, fromReceiptItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return grs, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toReceiptItem(gr entities.GoodsReceipt) receiptItem {
	return receiptItem{
		ID:           gr.ID,
		GRNumber:     gr.GRNumber,
		POID:         gr.POID,
		PONumber:     gr.PONumber,
		Items:        toLineItemRecords(gr.Items),
		ReceivedBy:   gr.ReceivedBy,
		ReceivedDate: timeToString(gr.ReceivedDate),
		Notes:        gr.Notes,
		Status:       gr.Status,
		CreatedAt:    timeToString(gr.CreatedAt),
	}
}

func fromReceiptItem(it receiptItem) entities.GoodsReceipt {
	return entities.GoodsReceipt{
		ID:           it.ID,
		GRNumber:     it.GRNumber,
		POID:         it.POID,
		PONumber:     it.PONumber,
		Items:        fromLineItemRecords(it.Items),
		ReceivedBy:   it.ReceivedBy,
		ReceivedDate: timeFromString(it.ReceivedDate),
		Notes:        it.Notes,
		Status:       it.Status,
		CreatedAt:    timeFromString(it.CreatedAt),
	}
}
