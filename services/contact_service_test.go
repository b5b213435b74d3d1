package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrautos/jrautos-api/dto"
)

func sampleContact() dto.ContactMessageCreate {
	phone := "+52 442 123 4567"
	return dto.ContactMessageCreate{
		Name:    "Ana",
		Email:   "ana@example.com",
		Phone:   &phone,
		Message: "Interested in the 2020 sedan",
	}
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	store := &fakeContactStore{}
	mailer := newFakeMailer(nil)
	service := NewContactService(store, mailer, zerolog.Nop())

	msg, err := service.Submit(context.Background(), sampleContact())
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
	require.Len(t, store.messages, 1)
	assert.Equal(t, msg.ID, store.messages[0].ID)

	select {
	case sent := <-mailer.sent:
		assert.Equal(t, "ana@example.com", sent.Email)
	case <-time.After(time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestSubmitSucceedsWhenMailerFails(t *testing.T) {
	store := &fakeContactStore{}
	mailer := newFakeMailer(errors.New("provider unreachable"))
	service := NewContactService(store, mailer, zerolog.Nop())

	msg, err := service.Submit(context.Background(), sampleContact())
	require.NoError(t, err, "notification failure must not fail the request")
	assert.NotEmpty(t, msg.ID)

	select {
	case <-mailer.sent:
	case <-time.After(time.Second):
		t.Fatal("notification was never attempted")
	}

	// the message is still retrievable afterwards
	messages, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, msg.ID, messages[0].ID)
}

func TestSubmitWithoutMailerSkipsNotification(t *testing.T) {
	store := &fakeContactStore{}
	service := NewContactService(store, nil, zerolog.Nop())

	msg, err := service.Submit(context.Background(), sampleContact())
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Len(t, store.messages, 1)
}

func TestSubmitStoreFailureSkipsNotifyStage(t *testing.T) {
	store := &fakeContactStore{insertErr: errors.New("write failed")}
	mailer := newFakeMailer(nil)
	service := NewContactService(store, mailer, zerolog.Nop())

	_, err := service.Submit(context.Background(), sampleContact())
	require.Error(t, err)

	select {
	case <-mailer.sent:
		t.Fatal("notify stage must not run when the persist stage fails")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestListNewestFirst(t *testing.T) {
	store := &fakeContactStore{}
	service := NewContactService(store, nil, zerolog.Nop())

	first, err := service.Submit(context.Background(), sampleContact())
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	second, err := service.Submit(context.Background(), sampleContact())
	require.NoError(t, err)

	messages, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, second.ID, messages[0].ID)
	assert.Equal(t, first.ID, messages[1].ID)
}
