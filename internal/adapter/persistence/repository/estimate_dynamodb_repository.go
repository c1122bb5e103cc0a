package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atelier_auto/internal/domain/entities"
	"atelier_auto/internal/domain/ordering"
	"atelier_auto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName     = "estimates"
	defaultEstimateItemsTableName = "estimate_items"

	// TransactWriteItems caps at 100 operations; one is reserved for the
	// estimate metadata update.
	maxReplaceOperations = 99
)

var ErrTooManyItems = errors.New("estimate item list exceeds the replace transaction limit")

type estimateRecord struct {
	ID             string  `dynamodbav:"id"`
	InterventionID string  `dynamodbav:"intervention_id"`
	Type           string  `dynamodbav:"type"`
	Status         string  `dynamodbav:"status"`
	ClaimNumber    *string `dynamodbav:"claim_number,omitempty"`
	RefusalReason  *string `dynamodbav:"refusal_reason,omitempty"`
	Trashed        bool    `dynamodbav:"trashed"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

type lineItemRecord struct {
	EstimateID      string `dynamodbav:"estimate_id"`
	ID              string `dynamodbav:"id"`
	Kind            string `dynamodbav:"kind"`
	Designation     string `dynamodbav:"designation"`
	Description     string `dynamodbav:"description,omitempty"`
	UnitPrice       string `dynamodbav:"unit_price"`
	Quantity        *int   `dynamodbav:"quantity,omitempty"`
	CalculateByTime bool   `dynamodbav:"calculate_by_time"`
	Discount        *int   `dynamodbav:"discount,omitempty"`
	Position        int    `dynamodbav:"position"`
}

// EstimateDynamoRepository persists Estimate aggregates in DynamoDB.
//
// Table requirements:
//   - estimates: PK id (string)
//   - estimate_items: PK estimate_id (string), SK id (string)
//
// Line items are only ever written whole, via ReplaceItems: one transaction
// deletes the stale rows, writes every submitted row and flips the estimate
// back to draft. Readers never observe a half-replaced list.

type EstimateDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	itemsTable string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
		itemsTable: getenvDefault("ESTIMATE_ITEMS_TABLE", defaultEstimateItemsTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateRecord(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var rec estimateRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Estimate{}, err
	}

	items, err := r.queryItems(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateRecord(rec, items), nil
}

// ReplaceItems implements the atomic delete-all/insert-all contract. The
// submitted array is the full next state; stale rows are removed, every
// submitted row is (re)written and the status resets to draft, all in one
// transaction. Concurrent replaces race whole-array, last write wins.
func (r *EstimateDynamoRepository) ReplaceItems(ctx context.Context, id string, items []entities.LineItem) (entities.Estimate, error) {
	existing, err := r.queryItemIDs(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	keep := make(map[string]bool, len(items))
	for _, it := range items {
		keep[it.ID] = true
	}

	var writes []types.TransactWriteItem
	for _, staleID := range existing {
		if keep[staleID] {
			// A put below overwrites it; the same key cannot appear twice
			// in one transaction.
			continue
		}
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.itemsTable),
				Key:       itemKey(id, staleID),
			},
		})
	}
	for _, it := range items {
		av, err := attributevalue.MarshalMap(toLineItemRecord(id, it))
		if err != nil {
			return entities.Estimate{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTable),
				Item:      av,
			},
		})
	}
	if len(writes) > maxReplaceOperations {
		return entities.Estimate{}, fmt.Errorf("%w: %d operations", ErrTooManyItems, len(writes))
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	writes = append(writes, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(entities.EstimateStatusDraft)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
		},
	})

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) && hasConditionalCheckFailure(canceled) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *EstimateDynamoRepository) SetClaimNumber(ctx context.Context, id string, claimNumber string) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #claim_number = :claim_number, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":claim_number": &types.AttributeValueMemberS{Value: claimNumber},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#claim_number": "claim_number",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) SetStatus(ctx context.Context, id string, status entities.EstimateStatus, refusalReason *string) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if refusalReason != nil {
			expr += ", #refusal_reason = :refusal_reason"
			vals[":refusal_reason"] = &types.AttributeValueMemberS{Value: *refusalReason}
			names["#refusal_reason"] = "refusal_reason"
		} else {
			expr += " REMOVE #refusal_reason"
			names["#refusal_reason"] = "refusal_reason"
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) SetTrashed(ctx context.Context, id string, trashed bool) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #trashed = :trashed, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":trashed":    &types.AttributeValueMemberBOOL{Value: trashed},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#trashed":    "trashed",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

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
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var rec estimateRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Estimate{}, err
	}

	items, err := r.queryItems(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateRecord(rec, items), nil
}

func (r *EstimateDynamoRepository) queryItems(ctx context.Context, estimateID string) ([]entities.LineItem, error) {
	var items []entities.LineItem
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.itemsTable),
			KeyConditionExpression: aws.String("estimate_id = :eid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":eid": &types.AttributeValueMemberS{Value: estimateID},
			},
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []lineItemRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, rec := range page {
			items = append(items, fromLineItemRecord(rec))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return ordering.SortDisplay(items), nil
}

func (r *EstimateDynamoRepository) queryItemIDs(ctx context.Context, estimateID string) ([]string, error) {
	items, err := r.queryItems(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids, nil
}

func itemKey(estimateID, itemID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"estimate_id": &types.AttributeValueMemberS{Value: estimateID},
		"id":          &types.AttributeValueMemberS{Value: itemID},
	}
}

func hasConditionalCheckFailure(canceled *types.TransactionCanceledException) bool {
	for _, reason := range canceled.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toEstimateRecord(e entities.Estimate) estimateRecord {
	return estimateRecord{
		ID:             e.ID,
		InterventionID: e.InterventionID,
		Type:           string(e.Type),
		Status:         string(e.Status),
		ClaimNumber:    e.ClaimNumber,
		RefusalReason:  e.RefusalReason,
		Trashed:        e.Trashed,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateRecord(rec estimateRecord, items []entities.LineItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	if items == nil {
		items = []entities.LineItem{}
	}
	return entities.Estimate{
		ID:             rec.ID,
		InterventionID: rec.InterventionID,
		Type:           entities.EstimateType(rec.Type),
		Status:         entities.EstimateStatus(rec.Status),
		ClaimNumber:    rec.ClaimNumber,
		RefusalReason:  rec.RefusalReason,
		Trashed:        rec.Trashed,
		Items:          items,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func toLineItemRecord(estimateID string, it entities.LineItem) lineItemRecord {
	return lineItemRecord{
		EstimateID:      estimateID,
		ID:              it.ID,
		Kind:            string(it.Kind),
		Designation:     it.Designation,
		Description:     it.Description,
		UnitPrice:       floatToString(it.UnitPrice),
		Quantity:        it.Quantity,
		CalculateByTime: it.CalculateByTime,
		Discount:        it.Discount,
		Position:        it.Position,
	}
}

func fromLineItemRecord(rec lineItemRecord) entities.LineItem {
	return entities.LineItem{
		ID:              rec.ID,
		Kind:            entities.ItemKind(rec.Kind),
		Designation:     rec.Designation,
		Description:     rec.Description,
		UnitPrice:       stringToFloat(rec.UnitPrice),
		Quantity:        rec.Quantity,
		CalculateByTime: rec.CalculateByTime,
		Discount:        rec.Discount,
		Position:        rec.Position,
	}
}
