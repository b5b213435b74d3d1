package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/jrautos/jrautos-api/dto"
	"github.com/jrautos/jrautos-api/models"
)

// StatusStore is the slice of the document store the status endpoints need.
type StatusStore interface {
	Insert(ctx context.Context, check models.StatusCheck) error
	FindAll(ctx context.Context) ([]models.StatusCheck, error)
}

// StatusService appends and lists liveness records.
type StatusService struct {
	store StatusStore
}

// NewStatusService creates a new status service instance.
func NewStatusService(store StatusStore) *StatusService {
	return &StatusService{store: store}
}

// Create appends a status check with a server-assigned id and timestamp.
func (s *StatusService) Create(ctx context.Context, req dto.StatusCheckCreate) (models.StatusCheck, error) {
	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  models.Now(),
	}
	if err := s.store.Insert(ctx, check); err != nil {
		return models.StatusCheck{}, err
	}
	return check, nil
}

// List returns the stored status checks.
func (s *StatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	return s.store.FindAll(ctx)
}
