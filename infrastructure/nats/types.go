package nats

// Pub/Sub subjects
const (
	// SubjectTasks prefix สำหรับ task events: tasks.{user_id}.{task_id}
	SubjectTasks = "tasks"
)

// ═══════════════════════════════════════════════════════════════════════════════
// TaskEvent - API instance → ทุก instance ที่ถือ websocket ของ user
// โครงสร้างนี้ต้องตรงกันทุก instance
// ═══════════════════════════════════════════════════════════════════════════════
type TaskEvent struct {
	TaskID   string  `json:"task_id"`
	UserID   string  `json:"user_id"`
	Kind     string  `json:"kind"`  // image, video, profile, speech
	State    string  `json:"state"` // pending, succeeded, failed, cancelled
	Progress float64 `json:"progress"`
	Message  string  `json:"message,omitempty"`
	Error    string  `json:"error,omitempty"`
	URL      string  `json:"url,omitempty"`
	BlobKey  string  `json:"blob_key,omitempty"`
	Scene    string  `json:"scene,omitempty"`
}
