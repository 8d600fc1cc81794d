package ports

import "context"

// ═══════════════════════════════════════════════════════════════════════════════
// Task Event Port - สำหรับกระจายสถานะ generation task ไปยัง websocket clients
// ═══════════════════════════════════════════════════════════════════════════════

// TaskEventData - Plain struct (ไม่มี NATS dependency)
type TaskEventData struct {
	TaskID   string
	UserID   string
	Kind     string  // "image", "video", "profile", "speech"
	State    string  // "pending", "succeeded", "failed", "cancelled"
	Progress float64 // 0-100
	Message  string
	Error    string
	URL      string // result URL เมื่อ succeeded
	BlobKey  string
	Scene    string
}

// TaskEventPublisherPort - Interface สำหรับส่ง task event
type TaskEventPublisherPort interface {
	PublishTaskEvent(ctx context.Context, event *TaskEventData) error
}

// TaskEventHandler - Callback function type
type TaskEventHandler func(event *TaskEventData)

// TaskEventSubscriberPort - Interface สำหรับ subscribe task events
// รับ ctx เพื่อให้ cancel subscription ผ่าน context ได้
type TaskEventSubscriberPort interface {
	Subscribe(ctx context.Context, handler TaskEventHandler) error
	Unsubscribe() error
}
