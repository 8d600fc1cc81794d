package rebrand

import (
	"regexp"
	"strings"
	"sync"
)

// DefaultCompetitors รายชื่อแบรนด์คู่แข่งที่จะถูกแทนที่
// override ได้ผ่าน settings (brand.competitors)
var DefaultCompetitors = []string{
	"FitPro",
	"GymShark",
	"MyProtein",
	"Optimum Nutrition",
	"MuscleTech",
	"BSN",
}

// Replacer แทนที่ชื่อแบรนด์คู่แข่งด้วยแบรนด์ที่เลือกแบบ case-insensitive
// idempotent: pattern เป็นชื่อคู่แข่งเท่านั้น ข้อความที่แทนแล้วจะไม่ match ซ้ำ
type Replacer struct {
	patterns []*regexp.Regexp
}

var (
	defaultReplacer *Replacer
	once            sync.Once
)

// Default return Replacer ที่ใช้ DefaultCompetitors
func Default() *Replacer {
	once.Do(func() {
		defaultReplacer = New(DefaultCompetitors)
	})
	return defaultReplacer
}

// New สร้าง Replacer จากรายชื่อคู่แข่ง
// ชื่อว่างถูกข้าม, ชื่อถูก escape ก่อน compile
func New(competitors []string) *Replacer {
	patterns := make([]*regexp.Regexp, 0, len(competitors))
	for _, name := range competitors {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		// \b กันการ match กลางคำ เช่น "BSN" ใน "ROBSN"
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(name)+`\b`))
	}
	return &Replacer{patterns: patterns}
}

// Apply แทนที่ทุกชื่อคู่แข่งใน text ด้วย brand
func (r *Replacer) Apply(text, brand string) string {
	if brand == "" {
		return text
	}
	for _, p := range r.patterns {
		text = p.ReplaceAllString(text, brand)
	}
	return text
}
