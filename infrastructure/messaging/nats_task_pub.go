package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	natspkg "github.com/creative-sdg/multitulza-sub000/infrastructure/nats"
)

// NATSTaskPublisher implements TaskEventPublisherPort using NATS Pub/Sub
type NATSTaskPublisher struct {
	conn *nats.Conn
}

// NewNATSTaskPublisher สร้าง TaskEventPublisherPort adapter สำหรับ NATS
func NewNATSTaskPublisher(conn *nats.Conn) ports.TaskEventPublisherPort {
	return &NATSTaskPublisher{conn: conn}
}

// PublishTaskEvent ส่ง task event ผ่าน NATS Pub/Sub
func (p *NATSTaskPublisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEventData) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.TaskID == "" {
		return fmt.Errorf("task_id is required")
	}
	if event.UserID == "" {
		return fmt.Errorf("user_id is required")
	}

	natsEvent := &natspkg.TaskEvent{
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
	}

	data, err := json.Marshal(natsEvent)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	// subject: tasks.{userID}.{taskID}
	subject := fmt.Sprintf("%s.%s.%s", natspkg.SubjectTasks, event.UserID, event.TaskID)
	return p.conn.Publish(subject, data)
}
