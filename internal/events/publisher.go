package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"knowledge-base-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// DocumentStatusEvent is emitted on every document status transition
type DocumentStatusEvent struct {
	DocumentID     uuid.UUID             `json:"document_id"`
	OrganizationID uuid.UUID             `json:"organization_id"`
	Status         models.DocumentStatus `json:"status"`
	RemoteIndexRef string                `json:"remote_index_ref,omitempty"`
	FailureReason  string                `json:"failure_reason,omitempty"`
	OccurredAt     time.Time             `json:"occurred_at"`
}

// Publisher delivers document events to subscribers
type Publisher interface {
	PublishDocumentStatus(ctx context.Context, event DocumentStatusEvent) error
}

// DocumentStatusSubject is the subject events of an organization are published on
func DocumentStatusSubject(orgID uuid.UUID) string {
	return fmt.Sprintf("knowledge.documents.%s.status", orgID)
}

// NopPublisher drops events; used when NATS is not configured
type NopPublisher struct{}

func (NopPublisher) PublishDocumentStatus(context.Context, DocumentStatusEvent) error { return nil }

type msgPublisher interface {
	PublishMsg(msg *nats.Msg) error
}

// NatsPublisher publishes events over core NATS
type NatsPublisher struct {
	conn msgPublisher
	nc   *nats.Conn
}

// NewNatsPublisher connects to the NATS servers in url
func NewNatsPublisher(url string) (*NatsPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("knowledge-base-backend"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(500*time.Millisecond),
		nats.Timeout(3*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &NatsPublisher{conn: nc, nc: nc}, nil
}

// PublishDocumentStatus publishes the event with its type and document id as headers
func (p *NatsPublisher) PublishDocumentStatus(ctx context.Context, event DocumentStatusEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal document status event: %w", err)
	}

	msg := nats.NewMsg(DocumentStatusSubject(event.OrganizationID))
	msg.Data = data
	msg.Header.Add("Event-Type", "document.status")
	msg.Header.Add("Document-Id", event.DocumentID.String())

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}
	return nil
}

// Close drains the connection
func (p *NatsPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
	}
}

var (
	_ Publisher = (*NatsPublisher)(nil)
	_ Publisher = NopPublisher{}
)
