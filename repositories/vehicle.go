package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jrautos/jrautos-api/models"
)

// vehicleListCap bounds the memory of an unpaginated listing.
const vehicleListCap = 100

// VehicleRepository handles store operations for the vehicles collection.
type VehicleRepository struct {
	coll *mongo.Collection
}

// NewVehicleRepository creates a new vehicle repository instance.
func NewVehicleRepository(db *mongo.Database) *VehicleRepository {
	return &VehicleRepository{coll: db.Collection("vehicles")}
}

// Find returns vehicles newest first. When onlyAvailable is set, vehicles
// with available=false are excluded from the result.
func (r *VehicleRepository) Find(ctx context.Context, onlyAvailable bool) ([]models.Vehicle, error) {
	filter := bson.M{}
	if onlyAvailable {
		filter["available"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(vehicleListCap)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindByID retrieves a vehicle by its application-assigned id. With
// onlyAvailable set, a hidden vehicle decodes the same way as an absent
// one: mongo.ErrNoDocuments.
func (r *VehicleRepository) FindByID(ctx context.Context, id string, onlyAvailable bool) (models.Vehicle, error) {
	filter := bson.M{"id": id}
	if onlyAvailable {
		filter["available"] = true
	}

	var vehicle models.Vehicle
	err := r.coll.FindOne(ctx, filter).Decode(&vehicle)
	return vehicle, err
}

// Insert persists a new vehicle document.
func (r *VehicleRepository) Insert(ctx context.Context, vehicle models.Vehicle) error {
	_, err := r.coll.InsertOne(ctx, vehicle)
	return err
}

// UpdateFields applies a field-level overwrite of the given fields to the
// vehicle document and returns the merged result. Returns
// mongo.ErrNoDocuments when no document matches the id.
func (r *VehicleRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (models.Vehicle, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var vehicle models.Vehicle
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(fields)}, opts).Decode(&vehicle)
	return vehicle, err
}

// Delete removes a vehicle document permanently. The returned bool reports
// whether anything matched.
func (r *VehicleRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
