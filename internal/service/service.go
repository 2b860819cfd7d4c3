package service

import (
	"github.com/classquest/classquest-api/internal/domain"
)

// EventPublisher fans class events out to live subscribers. Implementations
// must not block.
type EventPublisher interface {
	Publish(event domain.ClassEvent)
}

func publish(events EventPublisher, event domain.ClassEvent) {
	if events == nil {
		return
	}
	events.Publish(event)
}
