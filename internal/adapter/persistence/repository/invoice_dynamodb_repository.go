package repository

import (
	"context"
	"errors"
	"fmt"

	"billing_scheduler/internal/domain/entities"
	"billing_scheduler/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultInvoicesTableName = "invoices"
	InvoicesStatusIndex      = "status-index"
)

var (
	ErrInvoiceAlreadyExists = errors.New("invoice already exists")
	ErrInvoiceNotStored     = errors.New("invoice not stored")
)

// dynamoAPI is the subset of *dynamodb.Client the repository calls.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type invoiceItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	Amount     string `dynamodbav:"amount"`
	Currency   string `dynamodbav:"currency"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
type InvoiceDynamoRepository struct {
	log       *zap.Logger
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(log *zap.Logger, ddb *dynamodb.Client, tableName string) *InvoiceDynamoRepository {
	return newInvoiceDynamoRepository(log, ddb, tableName)
}

func newInvoiceDynamoRepository(log *zap.Logger, ddb dynamoAPI, tableName string) *InvoiceDynamoRepository {
	if log == nil {
		log = zap.NewNop()
	}
	if tableName == "" {
		tableName = DefaultInvoicesTableName
	}
	return &InvoiceDynamoRepository{log: log.Named("repository.invoice"), ddb: ddb, tableName: tableName}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, Error.Wrap(err)
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, fmt.Errorf("%w: %s", ErrInvoiceAlreadyExists, inv.ID)
		}
		return entities.Invoice{}, Error.Wrap(err)
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, Error.Wrap(err)
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}
	return decodeInvoice(out.Item)
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	var (
		items   []entities.Invoice
		startAt map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startAt,
		})
		if err != nil {
			return nil, Error.Wrap(err)
		}
		items = append(items, r.unmarshalInvoices(out.Items)...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startAt = out.LastEvaluatedKey
	}
}

// FetchByStatus queries the status index. GSI reads are eventually consistent,
// so an invoice updated moments ago may still show up under its old status.
func (r *InvoiceDynamoRepository) FetchByStatus(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	var (
		items   []entities.Invoice
		startAt map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(InvoicesStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExclusiveStartKey: startAt,
		})
		if err != nil {
			return nil, Error.Wrap(err)
		}
		items = append(items, r.unmarshalInvoices(out.Items)...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startAt = out.LastEvaluatedKey
	}
}

// Update writes the invoice status and updated_at. The invoice must already exist.
func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) error {
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: inv.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(inv.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(inv.UpdatedAt)},
		},
		ExpressionAttributeNames: mergeNames(names, map[string]string{"#id": "id"}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("%w: %s", ErrInvoiceNotStored, inv.ID)
		}
		return Error.Wrap(err)
	}
	return nil
}

// unmarshalInvoices decodes a result page. Rows that fail to decode are logged
// and skipped so one corrupt invoice never hides the rest of the page.
func (r *InvoiceDynamoRepository) unmarshalInvoices(raw []map[string]types.AttributeValue) []entities.Invoice {
	items := make([]entities.Invoice, 0, len(raw))
	for _, av := range raw {
		inv, err := decodeInvoice(av)
		if err != nil {
			r.log.Error("[invoice][repository] skipping undecodable invoice",
				zap.String("invoice_id", rawID(av)),
				zap.Error(err),
			)
			continue
		}
		items = append(items, inv)
	}
	return items
}

func decodeInvoice(av map[string]types.AttributeValue) (entities.Invoice, error) {
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Invoice{}, Error.Wrap(err)
	}
	return fromInvoiceItem(it)
}

func rawID(av map[string]types.AttributeValue) string {
	if s, ok := av["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount.Value.String(),
		Currency:   string(inv.Amount.Currency),
		Status:     string(inv.Status),
		CreatedAt:  formatTime(inv.CreatedAt),
		UpdatedAt:  formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) (entities.Invoice, error) {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return entities.Invoice{}, Error.New("invoice %s: invalid amount %q: %v", it.ID, it.Amount, err)
	}
	return entities.Invoice{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Amount:     entities.Money{Value: amount, Currency: entities.Currency(it.Currency)},
		Status:     entities.InvoiceStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}, nil
}
