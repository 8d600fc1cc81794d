package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind ประเภทของ generation task
type Kind string

const (
	KindImage   Kind = "image"
	KindVideo   Kind = "video"
	KindProfile Kind = "profile"
	KindSpeech  Kind = "speech"
)

// State สถานะของ task - แต่ละ task อยู่ได้ state เดียวเท่านั้น
type State string

const (
	StatePending   State = "pending"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

// IsTerminal ตรวจสอบว่าเป็น state สุดท้ายหรือไม่
func (s State) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateCancelled
}

// Result ผลลัพธ์ของ task ที่สำเร็จ
type Result struct {
	URL     string `json:"url"`     // URL ที่ใช้แสดงผล (blob key หรือ transient)
	BlobKey string `json:"blobKey"` // key ใน blob cache ("" ถ้า save ไม่สำเร็จ)
}

// Task หนึ่ง generation request ที่กำลังทำงานหรือจบแล้ว
// ImageID คือ key ฝั่ง client ที่ผูก task เข้ากับ history item
type Task struct {
	ID         uuid.UUID `json:"id"`
	Kind       Kind      `json:"kind"`
	UserID     string    `json:"userId"`
	ImageID    string    `json:"imageId"`
	Scene      string    `json:"scene,omitempty"`
	State      State     `json:"state"`
	Result     *Result   `json:"result,omitempty"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt,omitempty"`
}

type entry struct {
	task   Task
	cancel context.CancelFunc
}

// Registry ทะเบียน task เดียวทั้ง process - UI เห็นเฉพาะ snapshot read-only
// แทนที่ ad-hoc job maps ด้วย typed states + การ cancel จริงผ่าน context
type Registry struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[uuid.UUID]*entry),
	}
}

// Begin ลงทะเบียน task ใหม่ และ return context ที่ถูก cancel ได้
func (r *Registry) Begin(parent context.Context, kind Kind, userID, imageID, scene string) (Task, context.Context) {
	ctx, cancel := context.WithCancel(parent)

	t := Task{
		ID:        uuid.New(),
		Kind:      kind,
		UserID:    userID,
		ImageID:   imageID,
		Scene:     scene,
		State:     StatePending,
		StartedAt: time.Now(),
	}

	r.mu.Lock()
	r.entries[t.ID] = &entry{task: t, cancel: cancel}
	r.mu.Unlock()

	return t, ctx
}

// Succeed ปิด task เป็น succeeded พร้อมผลลัพธ์
func (r *Registry) Succeed(id uuid.UUID, result Result) {
	r.finish(id, StateSucceeded, &result, "")
}

// Fail ปิด task เป็น failed พร้อม error message
func (r *Registry) Fail(id uuid.UUID, errMsg string) {
	r.finish(id, StateFailed, nil, errMsg)
}

// Cancel ยกเลิก task - cancel context จริง (request upstream ถูกตัดด้วย)
// task ที่จบแล้ว cancel ไม่ได้
func (r *Registry) Cancel(id uuid.UUID) bool {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok || e.task.State.IsTerminal() {
		r.mu.Unlock()
		return false
	}
	e.task.State = StateCancelled
	e.task.FinishedAt = time.Now()
	cancel := e.cancel
	r.mu.Unlock()

	cancel()
	return true
}

// Dismiss ลบ task ที่จบแล้วออกจากทะเบียน (ผู้ใช้กดปิด error/ผลลัพธ์)
func (r *Registry) Dismiss(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || !e.task.State.IsTerminal() {
		return false
	}
	delete(r.entries, id)
	return true
}

// Get ดึง snapshot ของ task เดียว
func (r *Registry) Get(id uuid.UUID) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return Task{}, false
	}
	return e.task, true
}

// ListByUser ดึง snapshot ของทุก task ของ user เรียงตามเวลาเริ่ม
func (r *Registry) ListByUser(userID string) []Task {
	r.mu.RLock()
	out := make([]Task, 0)
	for _, e := range r.entries {
		if e.task.UserID == userID {
			out = append(out, e.task)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

// PruneFinished ลบ task ที่จบแล้วและเก่ากว่า maxAge ออก (กัน registry โต)
func (r *Registry) PruneFinished(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.entries {
		if e.task.State.IsTerminal() && e.task.FinishedAt.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) finish(id uuid.UUID, state State, result *Result, errMsg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || e.task.State.IsTerminal() {
		// cancelled ไปแล้วระหว่างรอ network - เก็บผลเป็น cancelled ตามเดิม
		return
	}
	e.task.State = state
	e.task.Result = result
	e.task.Error = errMsg
	e.task.FinishedAt = time.Now()
}
