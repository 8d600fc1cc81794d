package models

import "testing"

func TestTextBlockFromRow(t *testing.T) {
	cells := []string{
		"hook", "problem", "solution", "benefit", "proof", "offer", "urgency", "cta",
		"b1", "b2", "b3", "b4", "b5", "b6", "b7", "b8", "b9",
	}

	block := TextBlockFromRow(cells)

	if block.Hook != "hook" || block.CTA != "cta" {
		t.Errorf("column A-H mapping wrong: %+v", block)
	}
	if block.BodyLine1 != "b1" || block.BodyLine9 != "b9" {
		t.Errorf("column I-Q mapping wrong: %+v", block)
	}
}

func TestTextBlockFromRowShortRow(t *testing.T) {
	// แถวที่ column ท้ายว่าง Sheets API ตัด cell ทิ้ง
	block := TextBlockFromRow([]string{"hook", "problem"})

	if block.Hook != "hook" || block.Problem != "problem" {
		t.Errorf("present cells not mapped: %+v", block)
	}
	if block.Solution != "" || block.BodyLine9 != "" {
		t.Errorf("missing cells should be empty: %+v", block)
	}
}

func TestTextBlockFromRowExtraColumns(t *testing.T) {
	cells := make([]string, TextBlockColumnCount+3)
	for i := range cells {
		cells[i] = "x"
	}

	block := TextBlockFromRow(cells)
	if block.BodyLine9 != "x" {
		t.Errorf("last mapped column wrong: %q", block.BodyLine9)
	}
}

func TestTextBlockIsEmpty(t *testing.T) {
	if !TextBlockFromRow(nil).IsEmpty() {
		t.Error("empty row should produce empty block")
	}
	if TextBlockFromRow([]string{"", "", "x"}).IsEmpty() {
		t.Error("block with one cell should not be empty")
	}
}
