package service

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/require"
)

func TestConsumerCountsGenerationEvents(t *testing.T) {
	pubsub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	defer pubsub.Close()

	publisher := NewPublisherService("SECTION_GENERATED", pubsub)
	consumer := NewConsumerService(pubsub, "SECTION_GENERATED", noopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = consumer.Consume(ctx)
	}()

	for _, section := range []string{"introduction", "chapitre1_cadre_theorique"} {
		err := publisher.PublishSectionGenerated(SectionGeneratedEvent{
			UserID:      "user-doc",
			Theme:       "Intelligence artificielle",
			Section:     section,
			GeneratedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		return consumer.GenerationCount("Intelligence artificielle") == 2
	}, 2*time.Second, 10*time.Millisecond)

	require.Zero(t, consumer.GenerationCount("autre thème"))
}

func TestConsumerSkipsMalformedEvents(t *testing.T) {
	pubsub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	defer pubsub.Close()

	publisher := NewPublisherService("SECTION_GENERATED", pubsub)
	consumer := NewConsumerService(pubsub, "SECTION_GENERATED", noopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = consumer.Consume(ctx)
	}()

	malformed := message.NewMessage(watermill.NewUUID(), []byte("pas du json"))
	require.NoError(t, pubsub.Publish("SECTION_GENERATED", malformed))
	require.NoError(t, publisher.PublishSectionGenerated(SectionGeneratedEvent{
		UserID:      "user-doc",
		Theme:       "Intelligence artificielle",
		Section:     "introduction",
		GeneratedAt: time.Now(),
	}))

	// the malformed event is acked and dropped, the valid one is counted
	require.Eventually(t, func() bool {
		return consumer.GenerationCount("Intelligence artificielle") == 1
	}, 2*time.Second, 10*time.Millisecond)
}
