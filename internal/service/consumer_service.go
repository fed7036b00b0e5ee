package service

import (
	"context"
	"encoding/json"

	"ai-memoire-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/patrickmn/go-cache"
)

// IConsumerService drains section-generation events: each one is logged
// and counted per theme. The counters are process-local statistics, in
// line with the no-persistence scope.
type IConsumerService interface {
	Consume(ctx context.Context) error
	GenerationCount(theme string) int
}

type consumerService struct {
	subscriber message.Subscriber
	topic      string
	logger     logger.ILogger
	counters   *cache.Cache
}

func NewConsumerService(subscriber message.Subscriber, topic string, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topic:      topic,
		logger:     log,
		counters:   cache.New(cache.NoExpiration, 0),
	}
}

func (s *consumerService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var event SectionGeneratedEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			s.logger.Warn("consumer", "Skipping malformed generation event", map[string]interface{}{
				"error": err.Error(),
			})
			msg.Ack()
			continue
		}

		s.increment(event.Theme)
		s.logger.Info("consumer", "Section generated", map[string]interface{}{
			"user_id": event.UserID,
			"theme":   event.Theme,
			"section": event.Section,
			"total":   s.GenerationCount(event.Theme),
		})
		msg.Ack()
	}
	return nil
}

func (s *consumerService) GenerationCount(theme string) int {
	if n, found := s.counters.Get(theme); found {
		return n.(int)
	}
	return 0
}

func (s *consumerService) increment(theme string) {
	if n, found := s.counters.Get(theme); found {
		s.counters.Set(theme, n.(int)+1, cache.NoExpiration)
		return
	}
	s.counters.Set(theme, 1, cache.NoExpiration)
}
