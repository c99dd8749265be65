package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
)

// OutboxEvent is an enriched domain event ready for persistence. It is
// written in the same commit plan as the mutation that produced it.
type OutboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string // JSON
	Status      string
}

// OutboxRepository is the persistence interface for outbox events.
type OutboxRepository interface {
	// InsertMut builds the mutation inserting an outbox event.
	InsertMut(event *OutboxEvent) *spanner.Mutation

	// EnrichEvent wraps a domain event with outbox metadata.
	EnrichEvent(event domain.DomainEvent, payload string) *OutboxEvent
}
