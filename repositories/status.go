package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jrautos/jrautos-api/models"
)

const statusListCap = 1000

// StatusRepository handles store operations for the status_checks
// collection.
type StatusRepository struct {
	coll *mongo.Collection
}

// NewStatusRepository creates a new status repository instance.
func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{coll: db.Collection("status_checks")}
}

// Insert persists a new status check.
func (r *StatusRepository) Insert(ctx context.Context, check models.StatusCheck) error {
	_, err := r.coll.InsertOne(ctx, check)
	return err
}

// FindAll returns the stored status checks, newest first. Sorting on the
// timestamp keeps the listing deterministic for a fixed store state.
func (r *StatusRepository) FindAll(ctx context.Context) ([]models.StatusCheck, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(statusListCap)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	checks := []models.StatusCheck{}
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}
