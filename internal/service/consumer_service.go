package service

import (
	"context"

	"postboard/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventDelivery pushes a serialized event to every connected client.
// Implemented by the websocket hub.
type EventDelivery interface {
	Broadcast(data []byte)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService bridges the in-process event bus to the live feed:
// every post event published by the post service is forwarded verbatim
// to the websocket hub.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  EventDelivery
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery EventDelivery,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	cs.delivery.Broadcast(msg.Payload)
	msg.Ack()
}
