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

const defaultOrdersTableName = "purchase_orders"

type orderItem struct {
	ID            string           `dynamodbav:"id"`
	PONumber      string           `dynamodbav:"po_number"`
	PRID          string           `dynamodbav:"pr_id,omitempty"`
	SupplierID    string           `dynamodbav:"supplier_id"`
	SupplierName  string           `dynamodbav:"supplier_name"`
	Items         []lineItemRecord `dynamodbav:"items"`
	TotalAmount   float64          `dynamodbav:"total_amount"`
	Status        string           `dynamodbav:"status"`
	ApprovalLevel int              `dynamodbav:"approval_level"`
	ApprovedBy    []string         `dynamodbav:"approved_by"`
	DeliveryDate  string           `dynamodbav:"delivery_date,omitempty"`
	Notes         string           `dynamodbav:"notes,omitempty"`
	CreatedBy     string           `dynamodbav:"created_by"`
	CreatedAt     string           `dynamodbav:"created_at"`
	UpdatedAt     string           `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists purchase orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PURCHASE_ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(po))
	if err != nil {
		return entities.PurchaseOrder{}, err
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
		return entities.PurchaseOrder{}, err
	}
	return po, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PurchaseOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.PurchaseOrder, error) {
	pos := []entities.PurchaseOrder{}
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
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			pos = append(pos, fromOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return pos, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// ApplyApproval persists one approval level with a compare-and-swap on the
// pre-approval level. The condition also covers existence, so a deleted or
// concurrently approved order both come back as the zero value.
func (r *OrderDynamoRepository) ApplyApproval(ctx context.Context, po entities.PurchaseOrder, expectedLevel int, approverID string) (entities.PurchaseOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: po.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #approval_level = :expected"),
		UpdateExpression: aws.String(
			"SET #status = :status, #approval_level = :approval_level, #approved_by = list_append(if_not_exists(#approved_by, :empty), :approver), #updated_at = :updated_at",
		),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":         "status",
			"#approval_level": "approval_level",
			"#approved_by":    "approved_by",
			"#updated_at":     "updated_at",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(po.Status)},
			":approval_level": &types.AttributeValueMemberN{Value: strconv.Itoa(po.ApprovalLevel)},
			":expected":       &types.AttributeValueMemberN{Value: strconv.Itoa(expectedLevel)},
			":approver":       &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: approverID}}},
			":empty":          &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at":     &types.AttributeValueMemberS{Value: timeToString(po.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PurchaseOrder{}, nil
		}
		return entities.PurchaseOrder{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Count(ctx context.Context) (int, error) {
	return countTable(ctx, r.ddb, r.tableName)
}

func (r *OrderDynamoRepository) CountByStatus(ctx context.Context, status entities.ApprovalStatus) (int, error) {
	total := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			Select:           types.SelectCount,
			FilterExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if out.LastEvaluatedKey == nil {
			return total, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toOrderItem(po entities.PurchaseOrder) orderItem {
	approvedBy := po.ApprovedBy
	if approvedBy == nil {
		approvedBy = []string{}
	}
	return orderItem{
		ID:            po.ID,
		PONumber:      po.PONumber,
		PRID:          po.PRID,
		SupplierID:    po.SupplierID,
		SupplierName:  po.SupplierName,
		Items:         toLineItemRecords(po.Items),
		TotalAmount:   po.TotalAmount,
		Status:        string(po.Status),
		ApprovalLevel: po.ApprovalLevel,
		ApprovedBy:    approvedBy,
		DeliveryDate:  optTimeToString(po.DeliveryDate),
		Notes:         po.Notes,
		CreatedBy:     po.CreatedBy,
		CreatedAt:     timeToString(po.CreatedAt),
		UpdatedAt:     timeToString(po.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.PurchaseOrder {
	approvedBy := it.ApprovedBy
	if approvedBy == nil {
		approvedBy = []string{}
	}
	return entities.PurchaseOrder{
		ID:            it.ID,
		PONumber:      it.PONumber,
		PRID:          it.PRID,
		SupplierID:    it.SupplierID,
		SupplierName:  it.SupplierName,
		Items:         fromLineItemRecords(it.Items),
		TotalAmount:   it.TotalAmount,
		Status:        entities.ApprovalStatus(it.Status),
		ApprovalLevel: it.ApprovalLevel,
		ApprovedBy:    approvedBy,
		DeliveryDate:  optTimeFromString(it.DeliveryDate),
		Notes:         it.Notes,
		CreatedBy:     it.CreatedBy,
		CreatedAt:     timeFromString(it.CreatedAt),
		UpdatedAt:     timeFromString(it.UpdatedAt),
	}
}
