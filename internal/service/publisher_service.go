package service

import (
	"context"
	"encoding/json"
	"time"

	"invoicing-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishInvoiceEvent(ctx context.Context, eventType string, invoiceId uint) error
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

func (s *publisherService) PublishInvoiceEvent(ctx context.Context, eventType string, invoiceId uint) error {
	payload, err := json.Marshal(dto.InvoiceEventMessage{
		Type:       eventType,
		InvoiceId:  invoiceId,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.pubSub.Publish(s.topicName, msg)
}
