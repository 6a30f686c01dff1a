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
	defaultStepsTableName = "transaction_steps"
	stepsDealIDIndex      = "deal_id-index"
)

type transactionStepItem struct {
	ID          string `dynamodbav:"id"`
	DealID      string `dynamodbav:"deal_id"`
	Label       string `dynamodbav:"label"`
	Order       int    `dynamodbav:"step_order"`
	Status      string `dynamodbav:"status"`
	AssignedTo  string `dynamodbav:"assigned_to"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	Notes       string `dynamodbav:"notes,omitempty"`
}

// StepDynamoRepository persists TransactionStep entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: deal_id-index (PK: deal_id)
//
// "order" is a DynamoDB reserved word, hence the step_order attribute name.

type StepDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStepRepository = (*StepDynamoRepository)(nil)

func NewStepDynamoRepository(ddb *dynamodb.Client) *StepDynamoRepository {
	return &StepDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STEPS_TABLE", defaultStepsTableName),
	}
}

// CreateMany writes the catalog instantiation in one BatchWriteItem call.
// The whole catalog is 9 rows, well under the 25-item batch limit.
func (r *StepDynamoRepository) CreateMany(ctx context.Context, steps []entities.TransactionStep) ([]entities.TransactionStep, error) {
	if len(steps) == 0 {
		return nil, nil
	}

	writes := make([]types.WriteRequest, 0, len(steps))
	for _, s := range steps {
		av, err := attributevalue.MarshalMap(toTransactionStepItem(s))
		if err != nil {
			return nil, err
		}
		writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}

	out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{r.tableName: writes},
	})
	if err != nil {
		return nil, err
	}
	if len(out.UnprocessedItems) > 0 {
		return nil, errors.New("step batch write left unprocessed items")
	}
	return steps, nil
}

func (r *StepDynamoRepository) GetByID(ctx context.Context, id string) (entities.TransactionStep, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TransactionStep{}, err
	}
	if len(out.Item) == 0 {
		return entities.TransactionStep{}, nil
	}

	var it transactionStepItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TransactionStep{}, err
	}
	return fromTransactionStepItem(it), nil
}

func (r *StepDynamoRepository) ListByDealID(ctx context.Context, dealID string) ([]entities.TransactionStep, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(stepsDealIDIndex),
		KeyConditionExpression: aws.String("deal_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: dealID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.TransactionStep, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionStepItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionStepItem(it))
	}
	return items, nil
}

// UpdateStatus writes the status and either sets or removes completed_at in
// the same update, so the completion invariant holds row by row.
func (r *StepDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.StepStatus, completedAt *time.Time) (entities.TransactionStep, error) {
	updateExpr := "SET #status = :status REMOVE #completed_at"
	vals := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	if completedAt != nil {
		updateExpr = "SET #status = :status, #completed_at = :completed_at"
		vals[":completed_at"] = &types.AttributeValueMemberS{Value: completedAt.UTC().Format(time.RFC3339Nano)}
	}

	return r.update(ctx, id, updateExpr, vals, map[string]string{
		"#status":       "status",
		"#completed_at": "completed_at",
	})
}

func (r *StepDynamoRepository) UpdateNotes(ctx context.Context, id string, notes string) (entities.TransactionStep, error) {
	return r.update(ctx, id, "SET #notes = :notes", map[string]types.AttributeValue{
		":notes": &types.AttributeValueMemberS{Value: notes},
	}, map[string]string{
		"#notes": "notes",
	})
}

func (r *StepDynamoRepository) update(ctx context.Context, id, updateExpr string, values map[string]types.AttributeValue, names map[string]string) (entities.TransactionStep, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.TransactionStep{}, nil
		}
		return entities.TransactionStep{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.TransactionStep{}, nil
	}
	var it transactionStepItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.TransactionStep{}, err
	}
	return fromTransactionStepItem(it), nil
}

func toTransactionStepItem(s entities.TransactionStep) transactionStepItem {
	it := transactionStepItem{
		ID:         s.ID,
		DealID:     s.DealID,
		Label:      s.Label,
		Order:      s.Order,
		Status:     string(s.Status),
		AssignedTo: string(s.AssignedTo),
		Notes:      s.Notes,
	}
	if s.CompletedAt != nil {
		it.CompletedAt = s.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromTransactionStepItem(it transactionStepItem) entities.TransactionStep {
	s := entities.TransactionStep{
		ID:         it.ID,
		DealID:     it.DealID,
		Label:      it.Label,
		Order:      it.Order,
		Status:     entities.StepStatus(it.Status),
		AssignedTo: entities.StepAssignee(it.AssignedTo),
		Notes:      it.Notes,
	}
	if it.CompletedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			s.CompletedAt = &ts
		}
	}
	return s
}
