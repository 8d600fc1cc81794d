package websocket

import (
	"context"
	"sync"

	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
)

// TaskBroadcaster รับ task events จาก messaging และ broadcast ไปยัง websocket ของ user เจ้าของ task
// ใช้ ports.TaskEventSubscriberPort เพื่อ decouple จาก NATS implementation
type TaskBroadcaster struct {
	eventSub  ports.TaskEventSubscriberPort
	manager   *WebSocketManager
	running   bool
	runningMu sync.Mutex
	cancelCtx context.CancelFunc
}

// NewTaskBroadcaster สร้าง TaskBroadcaster ใหม่
func NewTaskBroadcaster(eventSub ports.TaskEventSubscriberPort) *TaskBroadcaster {
	return &TaskBroadcaster{
		eventSub: eventSub,
		manager:  Manager, // global Manager
	}
}

// Start เริ่ม broadcaster
func (tb *TaskBroadcaster) Start() error {
	tb.runningMu.Lock()
	if tb.running {
		tb.runningMu.Unlock()
		return nil
	}
	tb.running = true
	tb.runningMu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	tb.cancelCtx = cancel

	if err := tb.eventSub.Subscribe(ctx, tb.handleTaskEvent); err != nil {
		tb.runningMu.Lock()
		tb.running = false
		tb.runningMu.Unlock()
		return err
	}

	logger.Info("Task broadcaster started")
	return nil
}

// handleTaskEvent ส่ง event ต่อไปยัง connection ของ user เจ้าของ task
func (tb *TaskBroadcaster) handleTaskEvent(event *ports.TaskEventData) {
	if event == nil || event.UserID == "" {
		logger.Warn("Invalid task event received")
		return
	}

	tb.manager.BroadcastToUser(event.UserID, "task_update", map[string]interface{}{
		"taskId":   event.TaskID,
		"kind":     event.Kind,
		"state":    event.State,
		"progress": event.Progress,
		"message":  event.Message,
		"error":    event.Error,
		"url":      event.URL,
		"blobKey":  event.BlobKey,
		"scene":    event.Scene,
	})

	logger.Debug("Task event broadcast",
		"task_id", event.TaskID,
		"user_id", event.UserID,
		"state", event.State,
	)
}

// Stop หยุด broadcaster
func (tb *TaskBroadcaster) Stop() error {
	tb.runningMu.Lock()
	defer tb.runningMu.Unlock()

	if !tb.running {
		return nil
	}
	tb.running = false

	if tb.cancelCtx != nil {
		tb.cancelCtx()
	}
	return tb.eventSub.Unsubscribe()
}
