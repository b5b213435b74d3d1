package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jrautos/jrautos-api/dto"
	"github.com/jrautos/jrautos-api/models"
)

// VehicleStore is the slice of the document store the inventory needs.
type VehicleStore interface {
	Find(ctx context.Context, onlyAvailable bool) ([]models.Vehicle, error)
	FindByID(ctx context.Context, id string, onlyAvailable bool) (models.Vehicle, error)
	Insert(ctx context.Context, vehicle models.Vehicle) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) (models.Vehicle, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// VehicleService implements the inventory rules on top of the store.
type VehicleService struct {
	store VehicleStore
}

// NewVehicleService creates a new vehicle service instance.
func NewVehicleService(store VehicleStore) *VehicleService {
	return &VehicleService{store: store}
}

// ListPublic returns the available vehicles, newest first.
func (s *VehicleService) ListPublic(ctx context.Context) ([]models.Vehicle, error) {
	return s.store.Find(ctx, true)
}

// ListAll returns every vehicle regardless of availability, newest first.
func (s *VehicleService) ListAll(ctx context.Context) ([]models.Vehicle, error) {
	return s.store.Find(ctx, false)
}

// GetPublic returns a single available vehicle. An unavailable vehicle is
// indistinguishable from an absent one.
func (s *VehicleService) GetPublic(ctx context.Context, id string) (models.Vehicle, error) {
	vehicle, err := s.store.FindByID(ctx, id, true)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Vehicle{}, ErrNotFound
	}
	return vehicle, err
}

// Create assigns the server-side fields and persists the vehicle. An empty
// cover image falls back to the first image of the sequence.
func (s *VehicleService) Create(ctx context.Context, req dto.VehicleCreate) (models.Vehicle, error) {
	now := models.Now()
	vehicle := models.Vehicle{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Year:         req.Year,
		Brand:        req.Brand,
		BodyType:     req.BodyType,
		Engine:       req.Engine,
		Fuel:         req.Fuel,
		Transmission: req.Transmission,
		Description:  req.Description,
		Images:       req.Images,
		CoverImage:   req.CoverImage,
		Available:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if vehicle.CoverImage == "" && len(vehicle.Images) > 0 {
		vehicle.CoverImage = vehicle.Images[0]
	}

	if err := s.store.Insert(ctx, vehicle); err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

// Update applies the supplied fields to the stored vehicle and returns the
// merged result. Omitted fields stay untouched; updated_at refreshes on
// every call, changed fields or not.
func (s *VehicleService) Update(ctx context.Context, id string, req dto.VehicleUpdate) (models.Vehicle, error) {
	vehicle, err := s.store.UpdateFields(ctx, id, updateFields(req))
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Vehicle{}, ErrNotFound
	}
	return vehicle, err
}

// updateFields collects the non-null payload fields into a store update.
// Values are replaced whole: an images update swaps the entire sequence.
func updateFields(req dto.VehicleUpdate) map[string]any {
	fields := map[string]any{"updated_at": models.Now()}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.Brand != nil {
		fields["brand"] = *req.Brand
	}
	if req.BodyType != nil {
		fields["body_type"] = *req.BodyType
	}
	if req.Engine != nil {
		fields["engine"] = *req.Engine
	}
	if req.Fuel != nil {
		fields["fuel"] = *req.Fuel
	}
	if req.Transmission != nil {
		fields["transmission"] = *req.Transmission
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Images != nil {
		fields["images"] = *req.Images
	}
	if req.CoverImage != nil {
		fields["cover_image"] = *req.CoverImage
	}
	if req.Available != nil {
		fields["available"] = *req.Available
	}
	return fields
}

// Delete removes the vehicle permanently.
func (s *VehicleService) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
