package service

import (
	"context"
	"encoding/json"

	"activitylog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
	PublishEvent(ctx context.Context, evt events.BaseEvent) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(uuid.NewString(), payload)
	msg.SetContext(ctx)
	return s.pubSub.Publish(s.topicName, msg)
}

func (s *publisherService) PublishEvent(ctx context.Context, evt events.BaseEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return s.Publish(ctx, payload)
}
