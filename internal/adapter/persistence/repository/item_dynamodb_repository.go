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

const defaultItemsTableName = "items"

type itemItem struct {
	ID           string  `dynamodbav:"id"`
	Name         string  `dynamodbav:"name"`
	SKU          string  `dynamodbav:"sku"`
	Description  string  `dynamodbav:"description,omitempty"`
	Category     string  `dynamodbav:"category"`
	Unit         string  `dynamodbav:"unit"`
	UnitPrice    float64 `dynamodbav:"unit_price"`
	Quantity     int     `dynamodbav:"quantity"`
	ReorderLevel int     `dynamodbav:"reorder_level"`
	SupplierID   string  `dynamodbav:"supplier_id,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
}

// ItemDynamoRepository persists inventory items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The quantity attribute is also written by the goods-receipt repository's
// transaction (atomic ADD); this repository never increments it.
type ItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IItemRepository = (*ItemDynamoRepository)(nil)

func NewItemDynamoRepository(ddb *dynamodb.Client) *ItemDynamoRepository {
	return &ItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *ItemDynamoRepository) Create(ctx context.Context, i entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(toItemItem(i))
	if err != nil {
		return entities.Item{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Item{}, err
	}
	return i, nil
}

func (r *ItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.Item, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Item{}, err
	}
	if len(out.Item) == 0 {
		return entities.Item{}, nil
	}

	var it itemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Item{}, err
	}
	return fromItemItem(it), nil
}

func (r *ItemDynamoRepository) List(ctx context.Context) ([]entities.Item, error) {
	items := []entities.Item{}
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
			var it itemItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromItemItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Update rewrites the catalog fields, quantity and reorder level included;
// created_at stays as stored.
func (r *ItemDynamoRepository) Update(ctx context.Context, id string, i entities.Item) (entities.Item, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #name = :name, #sku = :sku, #description = :description, #category = :category, #unit = :unit, #unit_price = :unit_price, #quantity = :quantity, #reorder_level = :reorder_level, #supplier_id = :supplier_id",
		),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#name":          "name",
			"#sku":           "sku",
			"#description":   "description",
			"#category":      "category",
			"#unit":          "unit",
			"#unit_price":    "unit_price",
			"#quantity":      "quantity",
			"#reorder_level": "reorder_level",
			"#supplier_id":   "supplier_id",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":          &types.AttributeValueMemberS{Value: i.Name},
			":sku":           &types.AttributeValueMemberS{Value: i.SKU},
			":description":   &types.AttributeValueMemberS{Value: i.Description},
			":category":      &types.AttributeValueMemberS{Value: i.Category},
			":unit":          &types.AttributeValueMemberS{Value: i.Unit},
			":unit_price":    &types.AttributeValueMemberN{Value: strconv.FormatFloat(i.UnitPrice, 'f', -1, 64)},
			":quantity":      &types.AttributeValueMemberN{Value: strconv.Itoa(i.Quantity)},
			":reorder_level": &types.AttributeValueMemberN{Value: strconv.Itoa(i.ReorderLevel)},
			":supplier_id":   &types.AttributeValueMemberS{Value: i.SupplierID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Item{}, nil
		}
		return entities.Item{}, err
	}

	var it itemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Item{}, err
	}
	return fromItemItem(it), nil
}

func (r *ItemDynamoRepository) Count(ctx context.Context) (int, error) {
	return countTable(ctx, r.ddb, r.tableName)
}

func toItemItem(i entities.Item) itemItem {
	return itemItem{
		ID:           i.ID,
		Name:         i.Name,
		SKU:          i.SKU,
		Description:  i.Description,
		Category:     i.Category,
		Unit:         i.Unit,
		UnitPrice:    i.UnitPrice,
		Quantity:     i.Quantity,
		ReorderLevel: i.ReorderLevel,
		SupplierID:   i.SupplierID,
		CreatedAt:    timeToString(i.CreatedAt),
	}
}

func fromItemItem(it itemItem) entities.Item {
	return entities.Item{
		ID:           it.ID,
		Name:         it.Name,
		SKU:          it.SKU,
		Description:  it.Description,
		Category:     it.Category,
		Unit:         it.Unit,
		UnitPrice:    it.UnitPrice,
		Quantity:     it.Quantity,
		ReorderLevel: it.ReorderLevel,
		SupplierID:   it.SupplierID,
		CreatedAt:    timeFromString(it.CreatedAt),
	}
}
