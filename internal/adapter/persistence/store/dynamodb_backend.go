package store

import (
	"context"
	"time"

	"cpq_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoAPI is the part of *dynamodb.Client the backend uses.
type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type stateItem struct {
	Key       string `dynamodbav:"state_key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoBackend stores quote state in DynamoDB.
//
// Table requirements:
//   - PK: state_key (string)
type DynamoBackend struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IKeyValueBackend = (*DynamoBackend)(nil)

func NewDynamoBackend(ddb *dynamodb.Client, tableName string) *DynamoBackend {
	return newDynamoBackend(ddb, tableName)
}

func newDynamoBackend(ddb dynamoAPI, tableName string) *DynamoBackend {
	return &DynamoBackend{ddb: ddb, tableName: tableName, now: time.Now}
}

func (b *DynamoBackend) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := b.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(b.tableName),
		Key:            stateKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it stateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Value), nil
}

func (b *DynamoBackend) Put(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(stateItem{
		Key:       key,
		Value:     string(value),
		UpdatedAt: b.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	_, err = b.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(b.tableName),
		Item:      av,
	})
	return err
}

func (b *DynamoBackend) Delete(ctx context.Context, key string) error {
	_, err := b.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(b.tableName),
		Key:       stateKey(key),
	})
	return err
}

func stateKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"state_key": &types.AttributeValueMemberS{Value: key},
	}
}
