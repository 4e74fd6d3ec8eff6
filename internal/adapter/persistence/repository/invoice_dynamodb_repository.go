package repository

import (
	"context"

	"procurehub/internal/domain/entities"
	"procurehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

type invoiceItem struct {
	ID            string           `dynamodbav:"id"`
	InvoiceNumber string           `dynamodbav:"invoice_number"`
	POID          string           `dynamodbav:"po_id"`
	GRID          string           `dynamodbav:"gr_id,omitempty"`
	SupplierID    string           `dynamodbav:"supplier_id"`
	SupplierName  string           `dynamodbav:"supplier_name"`
	Items         []lineItemRecord `dynamodbav:"items"`
	TotalAmount   float64          `dynamodbav:"total_amount"`
	TaxAmount     float64          `dynamodbav:"tax_amount"`
	Status        string           `dynamodbav:"status"`
	DueDate       string           `dynamodbav:"due_date,omitempty"`
	PaidDate      string           `dynamodbav:"paid_date,omitempty"`
	CreatedAt     string           `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository persists supplier invoices in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	invoices := []entities.Invoice{}
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
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			invoices = append(invoices, fromInvoiceItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return invoices, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		POID:          inv.POID,
		GRID:          inv.GRID,
		SupplierID:    inv.SupplierID,
		SupplierName:  inv.SupplierName,
		Items:         toLineItemRecords(inv.Items),
		TotalAmount:   inv.TotalAmount,
		TaxAmount:     inv.TaxAmount,
		Status:        inv.Status,
		DueDate:       optTimeToString(inv.DueDate),
		PaidDate:      optTimeToString(inv.PaidDate),
		CreatedAt:     timeToString(inv.CreatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:            it.ID,
		InvoiceNumber: it.InvoiceNumber,
		POID:          it.POID,
		GRID:          it.GRID,
		SupplierID:    it.SupplierID,
		SupplierName:  it.SupplierName,
		Items:         fromLineItemRecords(it.Items),
		TotalAmount:   it.TotalAmount,
		TaxAmount:     it.TaxAmount,
		Status:        it.Status,
		DueDate:       optTimeFromString(it.DueDate),
		PaidDate:      optTimeFromString(it.PaidDate),
		CreatedAt:     timeFromString(it.CreatedAt),
	}
}
