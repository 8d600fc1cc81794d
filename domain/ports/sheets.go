package ports

import "context"

// ═══════════════════════════════════════════════════════════════════════════════
// Text Source Port - สำหรับดึง text block จาก spreadsheet
// ═══════════════════════════════════════════════════════════════════════════════

// TextSourcePort - Interface สำหรับ spreadsheet provider (Google Sheets)
type TextSourcePort interface {
	// FetchRow อ่าน cell A ถึง Q ของแถวที่ระบุ (1-based)
	// คืน slice ของ cell values ที่อาจสั้นกว่า 17 ถ้า cell ท้าย ๆ ว่าง
	FetchRow(ctx context.Context, spreadsheetID, sheetName string, row int) ([]string, error)

	// FetchRows อ่านหลายแถวต่อเนื่อง (ใช้ preview หลาย variant)
	FetchRows(ctx context.Context, spreadsheetID, sheetName string, startRow, count int) ([][]string, error)
}
