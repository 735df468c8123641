package common

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// Event is the JSON body published for every committed mutation.
type Event struct {
	Type       BindingKey `json:"type"`
	OccurredAt time.Time  `json:"occurredAt"`
	ActorID    int        `json:"actorId,omitempty"`
	UserID     int        `json:"userId,omitempty"`
	BlogID     int        `json:"blogId,omitempty"`
}

// EventPublisher publishes domain events after the database write has committed.
// A failed publish is logged and never fails the request that caused it.
type EventPublisher struct {
	mb     MessageProducer
	logger *slog.Logger
}

func NewEventPublisher(mb MessageProducer, logger *slog.Logger) *EventPublisher {
	if mb == nil {
		mb = NopProducer{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &EventPublisher{mb: mb, logger: logger}
}

func (p *EventPublisher) Publish(ctx context.Context, e Event) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(e)
	if err != nil {
		p.logger.Error("could not marshal event", slog.String("type", string(e.Type)), slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	err = p.mb.Publish(ctx, body, e.Type, BlogsiteExchange)
	if err != nil {
		p.logger.Error("could not publish event", slog.String("type", string(e.Type)), slog.String("error", err.Error()))
	}
}
