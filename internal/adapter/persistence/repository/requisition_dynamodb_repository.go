package repository

import (
	"context"
	"errors"
	"time"

	"procurehub/internal/domain/entities"
	"procurehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRequisitionsTableName = "purchase_requisitions"

type requisitionItem struct {
	ID            string           `dynamodbav:"id"`
	PRNumber      string           `dynamodbav:"pr_number"`
	RequesterID   string           `dynamodbav:"requester_id"`
	RequesterName string           `dynamodbav:"requester_name"`
	Department    string           `dynamodbav:"department"`
	Items         []lineItemRecord `dynamodbav:"items"`
	TotalAmount   float64          `dynamodbav:"total_amount"`
	Status        string           `dynamodbav:"status"`
	Justification string           `dynamodbav:"justification,omitempty"`
	RequiredBy    string           `dynamodbav:"required_by,omitempty"`
	CreatedAt     string           `dynamodbav:"created_at"`
	UpdatedAt     string           `dynamodbav:"updated_at"`
}

// RequisitionDynamoRepository persists purchase requisitions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type RequisitionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequisitionRepository = (*RequisitionDynamoRepository)(nil)

func NewRequisitionDynamoRepository(ddb *dynamodb.Client) *RequisitionDynamoRepository {
	return &RequisitionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PURCHASE_REQUISITIONS_TABLE", defaultRequisitionsTableName),
	}
}

func (r *RequisitionDynamoRepository) Create(ctx context.Context, pr entities.PurchaseRequisition) (entities.PurchaseRequisition, error) {
	av, err := attributevalue.MarshalMap(toRequisitionItem(pr))
	if err != nil {
		return entities.PurchaseRequisition{}, err
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
		return entities.PurchaseRequisition{}, err
	}
	return pr, nil
}

func (r *RequisitionDynamoRepository) List(ctx context.Context) ([]entities.PurchaseRequisition, error) {
	prs := []entities.PurchaseRequisition{}
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
			var it requisitionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			prs = append(prs, fromRequisitionItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return prs, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Approve flips the status to approved unconditionally; there is no
// multi-level escalation for requisitions.
func (r *RequisitionDynamoRepository) Approve(ctx context.Context, id string, at time.Time) (entities.PurchaseRequisition, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.PRStatusApproved)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(at)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PurchaseRequisition{}, nil
		}
		return entities.PurchaseRequisition{}, err
	}

	var it requisitionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PurchaseRequisition{}, err
	}
	return fromRequisitionItem(it), nil
}

func toRequisitionItem(pr entities.PurchaseRequisition) requisitionItem {
	return requisitionItem{
		ID:            pr.ID,
		PRNumber:      pr.PRNumber,
		RequesterID:   pr.RequesterID,
		RequesterName: pr.RequesterName,
		Department:    pr.Department,
		Items:         toLineItemRecords(pr.Items),
		TotalAmount:   pr.TotalAmount,
		Status:        string(pr.Status),
		Justification: pr.Justification,
		RequiredBy:    optTimeToString(pr.RequiredBy),
		CreatedAt:     timeToString(pr.CreatedAt),
		UpdatedAt:     timeToString(pr.UpdatedAt),
	}
}

func fromRequisitionItem(it requisitionItem) entities.PurchaseRequisition {
	return entities.PurchaseRequisition{
		ID:            it.ID,
		PRNumber:      it.PRNumber,
		RequesterID:   it.RequesterID,
		RequesterName: it.RequesterName,
		Department:    it.Department,
		Items:         fromLineItemRecords(it.Items),
		TotalAmount:   it.TotalAmount,
		Status:        entities.PRStatus(it.Status),
		Justification: it.Justification,
		RequiredBy:    optTimeFromString(it.RequiredBy),
		CreatedAt:     timeFromString(it.CreatedAt),
		UpdatedAt:     timeFromString(it.UpdatedAt),
	}
}
