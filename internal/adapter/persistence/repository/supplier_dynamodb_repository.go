package repository

import (
	"context"
	"errors"

	"procurehub/internal/domain/entities"
	"procurehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSuppliersTableName = "suppliers"

type supplierItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Email     string  `dynamodbav:"email,omitempty"`
	Phone     string  `dynamodbav:"phone,omitempty"`
	Address   string  `dynamodbav:"address,omitempty"`
	City      string  `dynamodbav:"city,omitempty"`
	Country   string  `dynamodbav:"country,omitempty"`
	TaxID     string  `dynamodbav:"tax_id,omitempty"`
	Rating    float64 `dynamodbav:"rating"`
	Status    string  `dynamodbav:"status"`
	CreatedAt string  `dynamodbav:"created_at"`
}

// SupplierDynamoRepository persists Supplier entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type SupplierDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISupplierRepository = (*SupplierDynamoRepository)(nil)

func NewSupplierDynamoRepository(ddb *dynamodb.Client) *SupplierDynamoRepository {
	return &SupplierDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUPPLIERS_TABLE", defaultSuppliersTableName),
	}
}

func (r *SupplierDynamoRepository) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	av, err := attributevalue.MarshalMap(toSupplierItem(s))
	if err != nil {
		return entities.Supplier{}, err
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
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierDynamoRepository) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Supplier{}, err
	}
	if len(out.Item) == 0 {
		return entities.Supplier{}, nil
	}

	var it supplierItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Supplier{}, err
	}
	return fromSupplierItem(it), nil
}

func (r *SupplierDynamoRepository) List(ctx context.Context) ([]entities.Supplier, error) {
	suppliers := []entities.Supplier{}
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
			var it supplierItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			suppliers = append(suppliers, fromSupplierItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return suppliers, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Update rewrites the contact fields only; rating, status and created_at
// stay as stored.
func (r *SupplierDynamoRepository) Update(ctx context.Context, id string, s entities.Supplier) (entities.Supplier, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #name = :name, #email = :email, #phone = :phone, #address = :address, #city = :city, #country = :country, #tax_id = :tax_id",
		),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#name":    "name",
			"#email":   "email",
			"#phone":   "phone",
			"#address": "address",
			"#city":    "city",
			"#country": "country",
			"#tax_id":  "tax_id",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":    &types.AttributeValueMemberS{Value: s.Name},
			":email":   &types.AttributeValueMemberS{Value: s.Email},
			":phone":   &types.AttributeValueMemberS{Value: s.Phone},
			":address": &types.AttributeValueMemberS{Value: s.Address},
			":city":    &types.AttributeValueMemberS{Value: s.City},
			":country": &types.AttributeValueMemberS{Value: s.Country},
			":tax_id":  &types.AttributeValueMemberS{Value: s.TaxID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Supplier{}, nil
		}
		return entities.Supplier{}, err
	}

	var it supplierItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Supplier{}, err
	}
	return fromSupplierItem(it), nil
}

func (r *SupplierDynamoRepository) Count(ctx context.Context) (int, error) {
	return countTable(ctx, r.ddb, r.tableName)
}

func toSupplierItem(s entities.Supplier) supplierItem {
	return supplierItem{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		City:      s.City,
		Country:   s.Country,
		TaxID:     s.TaxID,
		Rating:    s.Rating,
		Status:    s.Status,
		CreatedAt: timeToString(s.CreatedAt),
	}
}

func fromSupplierItem(it supplierItem) entities.Supplier {
	return entities.Supplier{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		City:      it.City,
		Country:   it.Country,
		TaxID:     it.TaxID,
		Rating:    it.Rating,
		Status:    it.Status,
		CreatedAt: timeFromString(it.CreatedAt),
	}
}
