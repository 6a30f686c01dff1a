package repository

import (
	"context"
	"errors"
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContractsTableName = "contracts"
	contractsDealIDIndex      = "deal_id-index"
)

type contractItem struct {
	ID          string `dynamodbav:"id"`
	DealID      string `dynamodbav:"deal_id"`
	Type        string `dynamodbav:"contract_type"`
	Status      string `dynamodbav:"status"`
	Content     string `dynamodbav:"content,omitempty"`
	GeneratedAt string `dynamodbav:"generated_at,omitempty"`
	SignedAt    string `dynamodbav:"signed_at,omitempty"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: deal_id-index (PK: deal_id)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
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
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// GetByDealIDAndType resolves the at-most-one contract per (deal, type) pair
// with a filtered GSI query.
func (r *ContractDynamoRepository) GetByDealIDAndType(ctx context.Context, dealID string, contractType entities.ContractType) (entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractsDealIDIndex),
		KeyConditionExpression: aws.String("deal_id = :did"),
		FilterExpression:       aws.String("contract_type = :ctype"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did":   &types.AttributeValueMemberS{Value: dealID},
			":ctype": &types.AttributeValueMemberS{Value: string(contractType)},
		},
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Items) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) ListByDealID(ctx context.Context, dealID string) ([]entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractsDealIDIndex),
		KeyConditionExpression: aws.String("deal_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: dealID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Contract, 0, len(out.Items))
	for _, raw := range out.Items {
		var it contractItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromContractItem(it))
	}
	return items, nil
}

// UpdateStatus writes the status and stamps signed_at only when the caller
// provides it (the SIGNED transition); an existing signed_at is never
// cleared.
func (r *ContractDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ContractStatus, signedAt *time.Time) (entities.Contract, error) {
	updateExpr := "SET #status = :status"
	vals := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{
		"#status": "status",
	}
	if signedAt != nil {
		updateExpr = "SET #status = :status, #signed_at = :signed_at"
		vals[":signed_at"] = &types.AttributeValueMemberS{Value: signedAt.UTC().Format(time.RFC3339Nano)}
		names["#signed_at"] = "signed_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Contract{}, nil
	}
	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func toContractItem(c entities.Contract) contractItem {
	it := contractItem{
		ID:      c.ID,
		DealID:  c.DealID,
		Type:    string(c.Type),
		Status:  string(c.Status),
		Content: c.Content,
	}
	if c.GeneratedAt != nil {
		it.GeneratedAt = c.GeneratedAt.UTC().Format(time.RFC3339Nano)
	}
	if c.SignedAt != nil {
		it.SignedAt = c.SignedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromContractItem(it contractItem) entities.Contract {
	c := entities.Contract{
		ID:      it.ID,
		DealID:  it.DealID,
		Type:    entities.ContractType(it.Type),
		Status:  entities.ContractStatus(it.Status),
		Content: it.Content,
	}
	if it.GeneratedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.GeneratedAt); err == nil {
			c.GeneratedAt = &ts
		}
	}
	if it.SignedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.SignedAt); err == nil {
			c.SignedAt = &ts
		}
	}
	return c
}
