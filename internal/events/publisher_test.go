package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"knowledge-base-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	msgs []*nats.Msg
	err  error
}

func (c *recordingConn) PublishMsg(msg *nats.Msg) error {
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, msg)
	return nil
}

func TestNatsPublisherPublishDocumentStatus(t *testing.T) {
	conn := &recordingConn{}
	publisher := &NatsPublisher{conn: conn}
	orgID := uuid.New()
	docID := uuid.New()

	err := publisher.PublishDocumentStatus(context.Background(), DocumentStatusEvent{
		DocumentID:     docID,
		OrganizationID: orgID,
		Status:         models.DocumentStatusFailed,
		FailureReason:  "timed out",
	})

	require.NoError(t, err)
	require.Len(t, conn.msgs, 1)
	msg := conn.msgs[0]
	assert.Equal(t, "knowledge.documents."+orgID.String()+".status", msg.Subject)
	assert.Equal(t, "document.status", msg.Header.Get("Event-Type"))
	assert.Equal(t, docID.String(), msg.Header.Get("Document-Id"))

	var event DocumentStatusEvent
	require.NoError(t, json.Unmarshal(msg.Data, &event))
	assert.Equal(t, models.DocumentStatusFailed, event.Status)
	assert.Equal(t, "timed out", event.FailureReason)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestNatsPublisherPublishError(t *testing.T) {
	publisher := &NatsPublisher{conn: &recordingConn{err: errors.New("connection closed")}}

	err := publisher.PublishDocumentStatus(context.Background(), DocumentStatusEvent{OrganizationID: uuid.New()})

	assert.ErrorContains(t, err, "connection closed")
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishDocumentStatus(context.Background(), DocumentStatusEvent{}))
}
