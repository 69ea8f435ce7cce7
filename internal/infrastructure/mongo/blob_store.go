// Package mongo persiste las colecciones como documentos {_id: key, payload: binario} en MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

const collName = "collections"

type document struct {
	Key       string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Collection subconjunto de *mongo.Collection que usa el almacén.
type Collection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
}

// BlobStore un documento por colección.
type BlobStore struct {
	client *mongo.Client
	coll   Collection
	now    func() time.Time
}

// NewWithCollection permite inyectar la colección (tests). Close no hace nada en ese caso.
func NewWithCollection(coll Collection) *BlobStore {
	return &BlobStore{coll: coll, now: time.Now}
}

// Connect abre la conexión y verifica con Ping.
func Connect(ctx context.Context, uri, dbName string) (*BlobStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("conectar mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &BlobStore{client: client, coll: client.Database(dbName).Collection(collName), now: time.Now}, nil
}

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongodb find %s: %w", key, err)
	}
	return doc.Payload, nil
}

func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	doc := document{Key: key, Payload: data, UpdatedAt: s.now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongodb upsert %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (s *BlobStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
