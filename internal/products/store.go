package products

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gokulnath/order-service/internal/aws"
	"github.com/google/uuid"
)

// Product is the catalog record kept in its own table. Line items reference
// products informally by ID string; nothing enforces the link.
type Product struct {
	ProductID   string  `json:"productId" dynamodbav:"product_id"` // PK
	Name        string  `json:"name" dynamodbav:"name"`
	Description string  `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Price       float64 `json:"price" dynamodbav:"price"`
	CreatedAt   string  `json:"createdAt" dynamodbav:"created_at"`
}

// Store encapsulates operations on the products table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new products Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Create assigns an ID and creation timestamp, persists the product and
// returns it.
func (s *Store) Create(ctx context.Context, p Product) (*Product, error) {
	p.ProductID = uuid.NewString()
	p.CreatedAt = s.nowFunc().UTC().Format(time.RFC3339)

	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return nil, fmt.Errorf("marshal product: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return nil, aws.WrapOp("put product", err)
	}
	return &p, nil
}

// Get fetches a product by ID. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, productID string) (*Product, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, aws.WrapOp("get product", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var p Product
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

// ScanAll returns every product in the table.
func (s *Store) ScanAll(ctx context.Context) ([]Product, error) {
	var all []Product
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, aws.WrapOp("scan products", err)
		}

		page := make([]Product, 0, len(out.Items))
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal products page: %w", err)
		}
		all = append(all, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return all, nil
}
