package services

import (
	"encoding/json"
	"time"

	"chai/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EventPublisher delivers record events to a message broker.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// recorder publishes record events on behalf of a service. A nil publisher
// turns every call into a no-op.
type recorder struct {
	publisher EventPublisher
	log       *logrus.Logger
	entity    string
}

// record never fails the caller: the change is already committed, so a
// broker problem is only logged.
func (r recorder) record(action string, id uint) {
	if r.publisher == nil {
		return
	}
	event := models.RecordEvent{
		ID:       uuid.NewString(),
		Entity:   r.entity,
		Action:   action,
		RecordID: id,
		At:       time.Now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		r.log.WithError(err).Error("failed to marshal record event")
		return
	}
	eventType := "record." + action
	if err := r.publisher.Publish(eventType, body); err != nil {
		r.log.WithError(err).WithFields(logrus.Fields{
			"entity":    r.entity,
			"record_id": id,
		}).Warn("failed to publish record event")
		return
	}
	r.log.WithFields(logrus.Fields{
		"event":     eventType,
		"entity":    r.entity,
		"record_id": id,
	}).Debug("published record event")
}
