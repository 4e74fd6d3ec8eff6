package repository

import (
	"context"
	"os"
	"time"

	"procurehub/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Timestamps are stored as RFC 3339 strings so the documents stay readable
// in the console and exchange cleanly over the API.

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromString(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func optTimeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToString(*t)
}

func optTimeFromString(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := timeFromString(s)
	return &t
}

// countTable counts every document in a table with a COUNT scan, paging
// through LastEvaluatedKey. Collections here are small; a full scan is the
// store's only count primitive for arbitrary tables.
func countTable(ctx context.Context, ddb *dynamodb.Client, tableName string) (int, error) {
	total := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(tableName),
			Select:            types.SelectCount,
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

// lineItemRecord is the embedded line item shape shared by requisition,
// order, receipt and invoice documents.
type lineItemRecord struct {
	ItemID    string  `dynamodbav:"item_id"`
	ItemName  string  `dynamodbav:"item_name"`
	Quantity  int     `dynamodbav:"quantity"`
	UnitPrice float64 `dynamodbav:"unit_price"`
	Total     float64 `dynamodbav:"total"`
}

func toLineItemRecords(items []entities.LineItem) []lineItemRecord {
	recs := make([]lineItemRecord, len(items))
	for i, it := range items {
		recs[i] = lineItemRecord{
			ItemID:    it.ItemID,
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		}
	}
	return recs
}

func fromLineItemRecords(recs []lineItemRecord) []entities.LineItem {
	items := make([]entities.LineItem, len(recs))
	for i, r := range recs {
		items[i] = entities.LineItem{
			ItemID:    r.ItemID,
			ItemName:  r.ItemName,
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
			Total:     r.Total,
		}
	}
	return items
}
