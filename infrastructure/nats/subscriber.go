package nats

import (
	"encoding/json"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
)

// EventHandler callback function เมื่อได้รับ task event
type EventHandler func(event *TaskEvent)

// Subscriber NATS Pub/Sub subscriber สำหรับ task events
type Subscriber struct {
	conn       *nats.Conn
	sub        *nats.Subscription
	handlers   []EventHandler
	handlersMu sync.RWMutex
	running    bool
	runningMu  sync.Mutex
}

// NewSubscriber สร้าง NATS Subscriber ใหม่
func NewSubscriber(conn *nats.Conn) *Subscriber {
	return &Subscriber{
		conn:     conn,
		handlers: make([]EventHandler, 0),
	}
}

// OnEvent ลงทะเบียน handler สำหรับ task events
func (s *Subscriber) OnEvent(handler EventHandler) {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.handlers = append(s.handlers, handler)
}

// Start เริ่ม subscribe
func (s *Subscriber) Start() error {
	s.runningMu.Lock()
	if s.running {
		s.runningMu.Unlock()
		return nil
	}
	s.running = true
	s.runningMu.Unlock()

	// tasks.> ครอบคลุม tasks.{user_id}.{task_id} ทุกรูปแบบ
	sub, err := s.conn.Subscribe(SubjectTasks+".>", s.handleMessage)
	if err != nil {
		return err
	}
	s.sub = sub

	logger.Info("NATS subscriber started", "subject", SubjectTasks+".>")
	return nil
}

func (s *Subscriber) handleMessage(msg *nats.Msg) {
	var event TaskEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to parse task event", "error", err)
		return
	}

	s.handlersMu.RLock()
	handlers := s.handlers
	s.handlersMu.RUnlock()

	for _, handler := range handlers {
		// รัน synchronous เพื่อรักษาลำดับ event ต่อ task
		func(h EventHandler, e TaskEvent) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Task event handler panicked", "error", r)
				}
			}()
			h(&e)
		}(handler, event)
	}
}

// Stop หยุด subscriber
func (s *Subscriber) Stop() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return nil
	}

	s.running = false

	if s.sub != nil {
		if err := s.sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", "error", err)
		}
	}

	logger.Info("NATS subscriber stopped")
	return nil
}

// IsRunning ตรวจสอบว่า subscriber กำลังทำงานอยู่หรือไม่
func (s *Subscriber) IsRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}
