package models

// TextBlock ข้อความโฆษณาหนึ่งแถวจาก Google Sheet
// column A–Q ตามลำดับ: hook..cta แล้วตามด้วย bodyLine1..9
type TextBlock struct {
	Hook      string `json:"hook"`      // A
	Problem   string `json:"problem"`   // B
	Solution  string `json:"solution"`  // C
	Benefit   string `json:"benefit"`   // D
	Proof     string `json:"proof"`     // E
	Offer     string `json:"offer"`     // F
	Urgency   string `json:"urgency"`   // G
	CTA       string `json:"cta"`       // H
	BodyLine1 string `json:"bodyLine1"` // I
	BodyLine2 string `json:"bodyLine2"` // J
	BodyLine3 string `json:"bodyLine3"` // K
	BodyLine4 string `json:"bodyLine4"` // L
	BodyLine5 string `json:"bodyLine5"` // M
	BodyLine6 string `json:"bodyLine6"` // N
	BodyLine7 string `json:"bodyLine7"` // O
	BodyLine8 string `json:"bodyLine8"` // P
	BodyLine9 string `json:"bodyLine9"` // Q
}

// TextBlockColumnCount จำนวน column ที่ map (A–Q)
const TextBlockColumnCount = 17

// TextBlockFromRow map row values ตามตำแหน่ง column
// cell ที่ขาดเป็น "" เสมอ ไม่มี nil หลุดไป downstream
func TextBlockFromRow(cells []string) TextBlock {
	col := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}
	return TextBlock{
		Hook:      col(0),
		Problem:   col(1),
		Solution:  col(2),
		Benefit:   col(3),
		Proof:     col(4),
		Offer:     col(5),
		Urgency:   col(6),
		CTA:       col(7),
		BodyLine1: col(8),
		BodyLine2: col(9),
		BodyLine3: col(10),
		BodyLine4: col(11),
		BodyLine5: col(12),
		BodyLine6: col(13),
		BodyLine7: col(14),
		BodyLine8: col(15),
		BodyLine9: col(16),
	}
}

// IsEmpty ตรวจสอบว่าแถวว่างทั้งแถวหรือไม่
func (t TextBlock) IsEmpty() bool {
	return t == TextBlock{}
}
