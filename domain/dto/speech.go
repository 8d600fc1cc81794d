package dto

// SynthesizeSpeechRequest คำขอ TTS - text เกิน 5000 ตัวอักษรถูกปัดตกก่อนถึง provider
type SynthesizeSpeechRequest struct {
	Text      string   `json:"text" validate:"required,min=1,max=5000"`
	VoiceID   string   `json:"voiceId" validate:"max=100"` // ว่าง = ใช้ default จาก settings
	ModelID   string   `json:"modelId" validate:"max=100"`
	Stability *float64 `json:"stability" validate:"omitempty,gte=0,lte=1"`
	Speed     *float64 `json:"speed" validate:"omitempty,gte=0.5,lte=2"`
	Save      bool     `json:"save"` // true = เก็บผลลง blob cache ด้วย
}

type SynthesizeSpeechResponse struct {
	BlobKey     string  `json:"blobKey,omitempty"`
	URL         string  `json:"url"`
	ContentType string  `json:"contentType"`
	Size        int64   `json:"size"`
	Duration    float64 `json:"duration"` // วินาที ประมาณจากขนาดไฟล์
}

type VoiceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListVoicesResponse struct {
	Voices []VoiceResponse `json:"voices"`
}
