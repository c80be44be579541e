// package store wraps the backing document database. The Store handle is
// created synchronously at boot but connected asynchronously: until Connect
// succeeds every repository call returns ErrNotReady, which handlers map to
// 503. The process never refuses to start because the database is down.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	ErrNotReady  = errors.New("store not connected")
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
)

// ValidID reports whether id is a syntactically valid document id. Handlers
// use it to reject malformed ids without touching the store.
func ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

type Store struct {
	uri    string
	dbName string

	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
}

func New(uri, dbName string) *Store {
	return &Store{uri: uri, dbName: dbName}
}

func (s *Store) Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return fmt.Errorf("unable to open db conn: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("unable to ping database: %w", err)
	}

	s.mu.Lock()
	s.client = client
	s.db = client.Database(s.dbName)
	s.mu.Unlock()

	return nil
}

func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db != nil
}

func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	return s.client.Disconnect(ctx)
}

func (s *Store) collection(name string) (*mongo.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotReady
	}

	return s.db.Collection(name), nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return oid, nil
}
