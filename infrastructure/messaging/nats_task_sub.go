package messaging

import (
	"context"

	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	natspkg "github.com/creative-sdg/multitulza-sub000/infrastructure/nats"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
)

// NATSTaskSubscriber implements TaskEventSubscriberPort using NATS Pub/Sub
type NATSTaskSubscriber struct {
	subscriber *natspkg.Subscriber
	cancel     context.CancelFunc
}

// NewNATSTaskSubscriber สร้าง TaskEventSubscriberPort adapter สำหรับ NATS
func NewNATSTaskSubscriber(subscriber *natspkg.Subscriber) ports.TaskEventSubscriberPort {
	return &NATSTaskSubscriber{subscriber: subscriber}
}

// Subscribe เริ่ม listen task events
func (s *NATSTaskSubscriber) Subscribe(ctx context.Context, handler ports.TaskEventHandler) error {
	_, s.cancel = context.WithCancel(ctx)

	natsHandler := func(event *natspkg.TaskEvent) {
		if event == nil {
			logger.Warn("Received nil task event from NATS")
			return
		}
		if event.TaskID == "" || event.UserID == "" {
			logger.Warn("Received task event with missing ids")
			return
		}

		handler(&ports.TaskEventData{
			TaskID:   event.TaskID,
			UserID:   event.UserID,
			Kind:     event.Kind,
			State:    event.State,
			Progress: event.Progress,
			Message:  event.Message,
			Error:    event.Error,
			URL:      event.URL,
			BlobKey:  event.BlobKey,
			Scene:    event.Scene,
		})
	}

	s.subscriber.OnEvent(natsHandler)

	if !s.subscriber.IsRunning() {
		return s.subscriber.Start()
	}
	return nil
}

// Unsubscribe หยุด listen
func (s *NATSTaskSubscriber) Unsubscribe() error {
	if s.cancel != nil {
		s.cancel()
	}
	return s.subscriber.Stop()
}
