package repository

import (
	"context"
	"log"
	"time"

	"followup_importacao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOverridesTableName = "overrides"

type overrideSetItem struct {
	SetName   string            `dynamodbav:"set_name"`
	Entries   map[string]string `dynamodbav:"entries,omitempty"`
	UpdatedAt string            `dynamodbav:"updated_at"`
}

// OverrideDynamoRepository persists the override sets in DynamoDB.
//
// Storage model:
//   - PK: set_name (one item per override set, e.g. "embarcados")
//   - entries: identity -> RFC3339 timestamp, rewritten whole on every save.
//
// A corrupt item degrades to an empty set on load; only transport errors
// propagate to the caller.

type OverrideDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOverrideRepository = (*OverrideDynamoRepository)(nil)

func NewOverrideDynamoRepository(ddb *dynamodb.Client) *OverrideDynamoRepository {
	return &OverrideDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OVERRIDES_TABLE", defaultOverridesTableName),
	}
}

func (r *OverrideDynamoRepository) LoadSet(ctx context.Context, name string) (map[string]time.Time, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"set_name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return map[string]time.Time{}, nil
	}

	var it overrideSetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		log.Printf("[overrides][repository] corrupt item for set %q, assuming empty: %v", name, err)
		return map[string]time.Time{}, nil
	}
	return fromOverrideSetItem(it), nil
}

func (r *OverrideDynamoRepository) SaveSet(ctx context.Context, name string, entries map[string]time.Time) error {
	av, err := attributevalue.MarshalMap(toOverrideSetItem(name, entries))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toOverrideSetItem(name string, entries map[string]time.Time) overrideSetItem {
	it := overrideSetItem{
		SetName:   name,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if len(entries) > 0 {
		it.Entries = make(map[string]string, len(entries))
		for id, at := range entries {
			it.Entries[id] = at.UTC().Format(time.RFC3339Nano)
		}
	}
	return it
}

func fromOverrideSetItem(it overrideSetItem) map[string]time.Time {
	entries := make(map[string]time.Time, len(it.Entries))
	for id, raw := range it.Entries {
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			log.Printf("[overrides][repository] dropping entry %q of set %q with bad timestamp %q", id, it.SetName, raw)
			continue
		}
		entries[id] = at
	}
	return entries
}
