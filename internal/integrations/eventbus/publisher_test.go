package eventbus

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

func TestNewMessage(t *testing.T) {
	requester := int64(7)
	b := &domain.Booking{
		ID:          1,
		UserID:      2,
		GymID:       3,
		CourtNumber: 4,
		StartTime:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
		Status:      domain.StatusConfirmed,
		RequesterID: &requester,
	}

	msg, err := NewMessage(BookingCreated, NewBookingEvent(b))
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, BookingCreated, msg.Type)
	_, err = uuid.Parse(msg.MessageId)
	assert.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, float64(1), body["booking_id"])
	assert.Equal(t, float64(7), body["requester_id"])
	assert.Equal(t, "confirmed", body["status"])
	assert.NotContains(t, body, "reason")
}

func TestNewMessage_UniqueIDs(t *testing.T) {
	a, err := NewMessage(BookingCancelled, map[string]int{"booking_id": 1})
	require.NoError(t, err)
	b, err := NewMessage(BookingCancelled, map[string]int{"booking_id": 1})
	require.NoError(t, err)

	assert.NotEqual(t, a.MessageId, b.MessageId)
}

func TestNewRecurringCreated(t *testing.T) {
	e := &domain.RecurringEvent{
		ID:                5,
		Name:              "Vôlei",
		Rule:              "Every Thursday, 08:00-09:00",
		RecurrenceEndDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		BlockedCourts:     []domain.CourtRef{{GymID: 1, Number: 2}},
	}

	payload := NewRecurringCreated(e)
	assert.Equal(t, "2024-06-30", payload.EndDate)
	assert.Nil(t, payload.StartTime)
	assert.Equal(t, []Court{{GymID: 1, CourtNumber: 2}}, payload.BlockedCourts)
}

func TestNoop(t *testing.T) {
	var p Noop
	assert.NoError(t, p.Publish(context.Background(), BookingCreated, nil))
	assert.NoError(t, p.Close())
}
