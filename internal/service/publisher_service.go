package service

import (
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// SectionGeneratedEvent is emitted after each successful archive write.
type SectionGeneratedEvent struct {
	UserID      string    `json:"user_id"`
	Theme       string    `json:"theme"`
	Section     string    `json:"section"`
	GeneratedAt time.Time `json:"generated_at"`
}

type IPublisherService interface {
	PublishSectionGenerated(event SectionGeneratedEvent) error
}

type publisherService struct {
	topic     string
	publisher message.Publisher
}

func NewPublisherService(topic string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topic:     topic,
		publisher: publisher,
	}
}

func (s *publisherService) PublishSectionGenerated(event SectionGeneratedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.publisher.Publish(s.topic, msg)
}
