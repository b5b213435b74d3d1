package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jrautos/jrautos-api/dto"
	"github.com/jrautos/jrautos-api/models"
)

const notifyTimeout = 15 * time.Second

// ContactStore is the slice of the document store the contact pipeline
// needs.
type ContactStore interface {
	Insert(ctx context.Context, msg models.ContactMessage) error
	FindAll(ctx context.Context) ([]models.ContactMessage, error)
}

// ContactService persists contact submissions and triggers the best-effort
// email notification.
type ContactService struct {
	store  ContactStore
	mailer Mailer // nil when no mail credential is configured
	logger zerolog.Logger
}

// NewContactService creates a new contact service instance.
func NewContactService(store ContactStore, mailer Mailer, logger zerolog.Logger) *ContactService {
	return &ContactService{store: store, mailer: mailer, logger: logger}
}

// Submit writes the message to the store, then hands it to the notifier.
// A store failure aborts the operation: the caller must know the message
// was not saved. The notification outcome never reaches the caller.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactMessageCreate) (models.ContactMessage, error) {
	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: models.Now(),
	}

	if err := s.store.Insert(ctx, msg); err != nil {
		return models.ContactMessage{}, err
	}

	s.notify(msg)
	return msg, nil
}

// notify runs the notification stage on a detached goroutine. Failures are
// logged and dropped; the persisted message has already been acknowledged.
// The goroutine gets its own context so a client disconnect cannot cancel
// a dispatch already in flight.
func (s *ContactService) notify(msg models.ContactMessage) {
	if s.mailer == nil {
		s.logger.Info().Msg("mail provider not configured, contact message saved to database only")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.mailer.SendContactNotification(ctx, msg); err != nil {
			s.logger.Error().Err(err).Str("email", msg.Email).Msg("failed to send contact notification")
			return
		}
		s.logger.Info().Str("email", msg.Email).Msg("contact notification sent")
	}()
}

// List returns all stored contact messages, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.store.FindAll(ctx)
}
