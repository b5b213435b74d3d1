package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jrautos/jrautos-api/models"
)

const contactListCap = 1000

// ContactRepository handles store operations for the contact_messages
// collection. Messages are write-once; there is no update or delete.
type ContactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository creates a new contact repository instance.
func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection("contact_messages")}
}

// Insert persists a new contact message.
func (r *ContactRepository) Insert(ctx context.Context, msg models.ContactMessage) error {
	_, err := r.coll.InsertOne(ctx, msg)
	return err
}

// FindAll returns every stored contact message, newest first.
func (r *ContactRepository) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(contactListCap)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	messages := []models.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
