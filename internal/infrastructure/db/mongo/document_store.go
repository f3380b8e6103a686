package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inventory-console/inventory-api/internal/core/domain"
)

const (
	defaultCollection = "documents"
	documentID        = "catalog"
)

// mongoDocument is the stored shape: the whole state under a fixed _id.
type mongoDocument struct {
	ID       string           `bson:"_id"`
	Users    []domain.User    `bson:"users"`
	Products []domain.Product `bson:"products"`
}

// DocumentStore keeps the application document as a single MongoDB document
// that is replaced wholesale on every write.
type DocumentStore struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewDocumentStore(db *mongo.Database, collection string) *DocumentStore {
	if collection == "" {
		collection = defaultCollection
	}
	return &DocumentStore{db: db, col: db.Collection(collection)}
}

func (s *DocumentStore) Read(ctx context.Context) (*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var md mongoDocument
	if err := s.col.FindOne(ctx, bson.M{"_id": documentID}).Decode(&md); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStoreEmpty
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return &domain.Document{Users: md.Users, Products: md.Products}, nil
}

func (s *DocumentStore) Write(ctx context.Context, doc *domain.Document) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	md := mongoDocument{ID: documentID, Users: doc.Users, Products: doc.Products}
	if md.Products == nil {
		md.Products = []domain.Product{}
	}
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": documentID}, md, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// Ping verifies the server answers and the database accepts commands.
func (s *DocumentStore) Ping(ctx context.Context) error {
	if err := s.db.Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	if err := s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("mongo command: %w", err)
	}
	return nil
}
