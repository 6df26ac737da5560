package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// Event types published to the membership topic.
const (
	TypeMemberRegistered     = "member.registered"
	TypeDeclarationSubmitted = "declaration.submitted"
)

// Envelope is the wire format for membership events.
type Envelope struct {
	Type       string    `json:"type"`
	MemberID   string    `json:"memberId"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Producer publishes membership lifecycle events. Publishing is best effort:
// a nil Producer (no broker configured) or a broker failure never fails the
// request that triggered the event.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer builds a Producer for the given broker and topic. Returns nil
// when no broker is configured, which disables publishing.
func NewProducer(broker, topic, username, password string) *Producer {
	if broker == "" || topic == "" {
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}

	if username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: username, Password: password},
		}
	}

	return &Producer{writer: writer}
}

// MemberRegistered publishes a member.registered event.
func (p *Producer) MemberRegistered(memberID uuid.UUID, email string) {
	p.publish(TypeMemberRegistered, memberID, email)
}

// DeclarationSubmitted publishes a declaration.submitted event.
func (p *Producer) DeclarationSubmitted(memberID uuid.UUID, email string) {
	p.publish(TypeDeclarationSubmitted, memberID, email)
}

func (p *Producer) publish(eventType string, memberID uuid.UUID, email string) {
	if p == nil || p.writer == nil {
		return
	}

	value, err := json.Marshal(Envelope{
		Type:       eventType,
		MemberID:   memberID.String(),
		Email:      email,
		OccurredAt: time.Now(),
	})
	if err != nil {
		log.Printf("event marshal failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(memberID.String()),
		Value: value,
		Time:  time.Now(),
	}); err != nil {
		log.Printf("event publish failed (%s): %v", eventType, err)
	}
}

// Close releases the underlying writer.
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
