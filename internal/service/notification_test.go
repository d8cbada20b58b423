package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainhub/fitness-platform/backend/internal/events"
	"github.com/trainhub/fitness-platform/backend/internal/models"
	"github.com/trainhub/fitness-platform/backend/internal/types"
)

type recordingPublisher struct {
	topics []string
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, evt events.Event) error {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestSendNotification(t *testing.T) {
	f := newFixture(t)
	pub := &recordingPublisher{}
	userSvc := NewUserService(f.db, f.gate, nil)
	svc := NewNotificationService(f.db, userSvc, f.clock, pub)
	ctx := context.Background()

	user := f.user(t, "test user", "test-user@mail.com", models.RoleAthlete)
	sender := f.user(t, "test2", "test2@mail", models.RoleAthlete)
	req := &types.NotificationRequest{Title: ptr("test notification"), Body: ptr("test notification body")}

	_, err := svc.SendNotification(ctx, user.ID, req)
	assert.ErrorIs(t, err, ErrNoPushToken)
	assert.EqualError(t, err, fmt.Sprintf("user with id %d has no push token", user.ID))
	assert.Empty(t, pub.events)

	require.NoError(t, userSvc.SetPushToken(ctx, user.ID, &types.PushTokenRequest{Token: ptr("test token")}))

	_, err = svc.SendNotification(ctx, user.ID, &types.NotificationRequest{Title: ptr("only a title")})
	assert.ErrorIs(t, err, ErrNotificationMissingFields)

	req.FromUserID = &sender.ID
	n, err := svc.SendNotification(ctx, user.ID, req)
	require.NoError(t, err)
	assert.True(t, n.Date.Equal(testNow))

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TopicNotificationCreated, pub.topics[0])
	var payload pushRequest
	require.NoError(t, json.Unmarshal(pub.events[0].Payload, &payload))
	assert.Equal(t, "test token", payload.PushToken)
	assert.Equal(t, "test notification", payload.Notification.Title)

	list, err := svc.ListNotifications(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "test notification", list[0].Title)
	assert.Equal(t, "test notification body", list[0].Body)
	assert.Equal(t, user.ID, list[0].UserID)
	require.NotNil(t, list[0].Sender)
	assert.Equal(t, sender.ID, list[0].Sender.ID)
	assert.Equal(t, "test2@mail", list[0].Sender.Email)
	assert.Equal(t, "test2", list[0].Sender.Name)

	_, err = svc.ListNotifications(ctx, 4555)
	assert.ErrorIs(t, err, ErrUserIDNotFound)
}
