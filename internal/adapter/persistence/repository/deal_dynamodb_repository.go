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

const defaultDealsTableName = "deals"

type dealItem struct {
	ID        string `dynamodbav:"id"`
	Address   string `dynamodbav:"address,omitempty"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DealDynamoRepository persists the Deal aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type DealDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDealRepository = (*DealDynamoRepository)(nil)

func NewDealDynamoRepository(ddb *dynamodb.Client) *DealDynamoRepository {
	return &DealDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEALS_TABLE", defaultDealsTableName),
	}
}

func (r *DealDynamoRepository) Create(ctx context.Context, d entities.Deal) (entities.Deal, error) {
	av, err := attributevalue.MarshalMap(toDealItem(d))
	if err != nil {
		return entities.Deal{}, err
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
		return entities.Deal{}, err
	}
	return d, nil
}

func (r *DealDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deal{}, nil
	}

	var it dealItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Deal{}, err
	}
	return fromDealItem(it), nil
}

func (r *DealDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DealStatus) (entities.Deal, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Deal{}, nil
		}
		return entities.Deal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Deal{}, nil
	}
	var it dealItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Deal{}, err
	}
	return fromDealItem(it), nil
}

func toDealItem(d entities.Deal) dealItem {
	return dealItem{
		ID:        d.ID,
		Address:   d.Address,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDealItem(it dealItem) entities.Deal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Deal{
		ID:        it.ID,
		Address:   it.Address,
		Status:    entities.DealStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
