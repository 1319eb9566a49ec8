package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"plan_appetit/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const kvCollectionName = "kv_entries"

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// KVMongoRepository stores one document per namespaced key in the
// kv_entries collection.
type KVMongoRepository struct {
	collection *mongo.Collection
	namespace  string
}

var _ interfaces.IKeyValueStore = (*KVMongoRepository)(nil)

func NewKVMongoRepository(db *mongo.Database, namespace string) *KVMongoRepository {
	return &KVMongoRepository{
		collection: db.Collection(kvCollectionName),
		namespace:  namespace,
	}
}

func (r *KVMongoRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": namespacedKey(r.namespace, key)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("find key %s: %w", key, err)
	}
	return doc.Value, true, nil
}

func (r *KVMongoRepository) Set(ctx context.Context, key, value string) error {
	id := namespacedKey(r.namespace, key)
	doc := kvDocument{Key: id, Value: value, UpdatedAt: time.Now().UTC()}

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert key %s: %w", key, err)
	}
	return nil
}
