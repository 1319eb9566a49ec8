package repository

import (
	"context"
	"fmt"
	"time"

	"plan_appetit/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// KVDynamoRepository persists key-value entries in DynamoDB.
//
// Table requirements:
//   - PK: key (string), stored as "<namespace>:<key>"
//
// Writes are plain PutItem calls: the configuration store is last-writer-wins.

type KVDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	namespace string
}

var _ interfaces.IKeyValueStore = (*KVDynamoRepository)(nil)

func NewKVDynamoRepository(ddb *dynamodb.Client, tableName, namespace string) *KVDynamoRepository {
	return &KVDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		namespace: namespace,
	}
}

func (r *KVDynamoRepository) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: namespacedKey(r.namespace, key)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, fmt.Errorf("get item %s: %w", key, err)
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, fmt.Errorf("unmarshal item %s: %w", key, err)
	}
	return it.Value, true, nil
}

func (r *KVDynamoRepository) Set(ctx context.Context, key, value string) error {
	av, err := attributevalue.MarshalMap(kvItem{
		Key:       namespacedKey(r.namespace, key),
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal item %s: %w", key, err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put item %s: %w", key, err)
	}
	return nil
}
