package dto

import "github.com/creative-sdg/multitulza-sub000/domain/models"

// FetchTextBlockRequest อ่าน text block หนึ่งแถวจาก spreadsheet
type FetchTextBlockRequest struct {
	SpreadsheetID string `json:"spreadsheetId" validate:"max=100"`
	SheetName     string `json:"sheetName" validate:"max=100"`
	Row           int    `json:"row" validate:"required,gte=1,lte=100000"`
	Brand         string `json:"brand" validate:"max=100"` // ถ้าไม่ว่าง ใช้ rebrand ทุก field
}

// TextBlock เป็น null เมื่อแถวนั้นว่างทุกคอลัมน์
type TextBlockResponse struct {
	Row       int               `json:"row"`
	TextBlock *models.TextBlock `json:"textBlock"`
}

// RebrandRequest แทน competitor brand ในข้อความด้วย brand ของเรา
type RebrandRequest struct {
	Text  string `json:"text" validate:"required,max=10000"`
	Brand string `json:"brand" validate:"required,max=100"`
}

type RebrandResponse struct {
	Text string `json:"text"`
}
