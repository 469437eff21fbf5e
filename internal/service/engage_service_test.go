package service

import (
	"testing"

	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEngageService(t *testing.T) (EngageService, *gorm.DB) {
	db := newTestDB(t)
	return NewEngageService(repository.NewNewsletterRepo(db), repository.NewContactRepo(db)), db
}

func TestSubscribeIsIdempotent(t *testing.T) {
	svc, _ := newEngageService(t)

	first, err := svc.Subscribe("Reader@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", first.Email)

	second, err := svc.Subscribe("reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = svc.Subscribe("not-an-email")
	assert.Error(t, err)
}

func TestUnsubscribeAndResubscribe(t *testing.T) {
	svc, _ := newEngageService(t)

	subscriber, err := svc.Subscribe("reader@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe("reader@example.com"))

	active, err := svc.GetSubscribers()
	require.NoError(t, err)
	assert.Empty(t, active)

	back, err := svc.Subscribe("reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, subscriber.ID, back.ID)
	assert.False(t, back.Unsubscribed)

	assert.ErrorIs(t, svc.Unsubscribe("never@example.com"), gorm.ErrRecordNotFound)
}

func TestContactMessages(t *testing.T) {
	svc, _ := newEngageService(t)

	err := svc.SubmitContactMessage(&model.ContactMessage{
		Name:  "Ali",
		Email: "ali@example.com",
		Body:  "Do you stock RTX cards?",
	})
	require.NoError(t, err)

	err = svc.SubmitContactMessage(&model.ContactMessage{Name: "NoBody", Email: "x@example.com"})
	assert.Error(t, err)

	messages, err := svc.GetContactMessages()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.False(t, messages[0].Read)

	require.NoError(t, svc.MarkMessageRead(messages[0].ID))
	messages, err = svc.GetContactMessages()
	require.NoError(t, err)
	assert.True(t, messages[0].Read)
}
