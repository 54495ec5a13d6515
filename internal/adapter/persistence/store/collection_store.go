// Package store implements the record store: one DynamoDB item per
// logical collection, holding the whole collection as a JSON array.
//
// There is deliberately no per-document read or write. Every mutation
// is read-all, mutate in memory, write-all, and the table offers no
// transaction isolation across writers: concurrent writers to the same
// collection race and the last write wins. That is an accepted
// property of the system, not something this layer protects against.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCollectionsTableName = "collections"

// ErrStoreUnavailable wraps any DynamoDB failure. Writes propagate it
// to the caller; reads recover locally with the collection's seed.
var ErrStoreUnavailable = errors.New("record store unavailable")

type collectionItem struct {
	Name      string `dynamodbav:"name"`
	Documents string `dynamodbav:"documents"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CollectionStore reads and writes whole collections.
//
// Table requirements:
//   - PK: name (string)
type CollectionStore struct {
	ddb       *dynamodb.Client
	tableName string
}

func NewCollectionStore(ddb *dynamodb.Client) *CollectionStore {
	return &CollectionStore{
		ddb:       ddb,
		tableName: getenvDefault("COLLECTIONS_TABLE", defaultCollectionsTableName),
	}
}

// ReadAll returns the raw JSON array stored under the collection name.
// found is false when the collection has never been written.
func (s *CollectionStore) ReadAll(ctx context.Context, collection string) (raw json.RawMessage, found bool, err error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: collection},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, collection, err)
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, fmt.Errorf("%w: decode %s: %v", ErrStoreUnavailable, collection, err)
	}
	return json.RawMessage(it.Documents), true, nil
}

// WriteAll replaces the collection's documents with the given JSON
// array.
func (s *CollectionStore) WriteAll(ctx context.Context, collection string, raw json.RawMessage) error {
	av, err := attributevalue.MarshalMap(collectionItem{
		Name:      collection,
		Documents: string(raw),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStoreUnavailable, collection, err)
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStoreUnavailable, collection, err)
	}
	return nil
}

// ReadCollection loads and decodes a typed collection. Read and decode
// failures recover with the seed dataset; a collection that has never
// been written is initialized with the seed first.
func ReadCollection[T any](ctx context.Context, s *CollectionStore, collection string, seed []T) ([]T, error) {
	raw, found, err := s.ReadAll(ctx, collection)
	if err != nil {
		log.Printf("[store] read failed collection=%s err=%v, serving seed", collection, err)
		return append([]T(nil), seed...), nil
	}
	if !found {
		if err := WriteCollection(ctx, s, collection, seed); err != nil {
			log.Printf("[store] seed write failed collection=%s err=%v", collection, err)
		}
		return append([]T(nil), seed...), nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[store] corrupt collection=%s err=%v, serving seed", collection, err)
		return append([]T(nil), seed...), nil
	}
	return items, nil
}

// WriteCollection encodes and stores a typed collection.
func WriteCollection[T any](ctx context.Context, s *CollectionStore, collection string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStoreUnavailable, collection, err)
	}
	return s.WriteAll(ctx, collection, raw)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
