package serviceimpl

import (
	"context"
	"fmt"
	"sync"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/rebrand"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
)

type TextBlockServiceImpl struct {
	source   ports.TextSourcePort
	settings *settings.SettingsCache

	mu       sync.Mutex
	replacer *rebrand.Replacer
	compiled string // competitor list ที่ replacer ปัจจุบัน compile ไว้
}

func NewTextBlockService(source ports.TextSourcePort, cache *settings.SettingsCache) services.TextBlockService {
	return &TextBlockServiceImpl{
		source:   source,
		settings: cache,
	}
}

// FetchBlock อ่าน text block หนึ่งแถวจาก spreadsheet
// spreadsheet/sheet ไม่ระบุใช้ค่า default จาก settings
func (s *TextBlockServiceImpl) FetchBlock(ctx context.Context, req *dto.FetchTextBlockRequest) (*models.TextBlock, error) {
	spreadsheetID := req.SpreadsheetID
	if spreadsheetID == "" {
		spreadsheetID = s.settings.Get("sheets", "default_spreadsheet_id")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("%w: spreadsheet ID is required", services.ErrInvalidInput)
	}

	sheetName := req.SheetName
	if sheetName == "" {
		sheetName = s.settings.Get("sheets", "default_sheet_name")
	}
	if sheetName == "" {
		sheetName = "Sheet1"
	}

	if s.source == nil {
		return nil, fmt.Errorf("%w: sheets client not configured", services.ErrUpstream)
	}

	cells, err := s.source.FetchRow(ctx, spreadsheetID, sheetName, req.Row)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrUpstream, err)
	}

	block := models.TextBlockFromRow(cells)

	brand := req.Brand
	if brand == "" {
		brand = s.settings.Get("brand", "default_brand")
	}
	if brand != "" {
		block = s.rebrandBlock(block, brand)
	}

	logger.InfoContext(ctx, "Text block fetched",
		"spreadsheet_id", spreadsheetID,
		"sheet", sheetName,
		"row", req.Row,
		"rebranded", brand != "",
	)
	return &block, nil
}

// Rebrand แทน competitor brand ในข้อความด้วย brand ที่เลือก
func (s *TextBlockServiceImpl) Rebrand(text, brand string) string {
	return s.getReplacer().Apply(text, brand)
}

func (s *TextBlockServiceImpl) rebrandBlock(block models.TextBlock, brand string) models.TextBlock {
	r := s.getReplacer()
	block.Hook = r.Apply(block.Hook, brand)
	block.Problem = r.Apply(block.Problem, brand)
	block.Solution = r.Apply(block.Solution, brand)
	block.Benefit = r.Apply(block.Benefit, brand)
	block.Proof = r.Apply(block.Proof, brand)
	block.Offer = r.Apply(block.Offer, brand)
	block.Urgency = r.Apply(block.Urgency, brand)
	block.CTA = r.Apply(block.CTA, brand)
	block.BodyLine1 = r.Apply(block.BodyLine1, brand)
	block.BodyLine2 = r.Apply(block.BodyLine2, brand)
	block.BodyLine3 = r.Apply(block.BodyLine3, brand)
	block.BodyLine4 = r.Apply(block.BodyLine4, brand)
	block.BodyLine5 = r.Apply(block.BodyLine5, brand)
	block.BodyLine6 = r.Apply(block.BodyLine6, brand)
	block.BodyLine7 = r.Apply(block.BodyLine7, brand)
	block.BodyLine8 = r.Apply(block.BodyLine8, brand)
	block.BodyLine9 = r.Apply(block.BodyLine9, brand)
	return block
}

// getReplacer คืน replacer ที่ compile จาก competitor list ปัจจุบัน
// list ถูกแก้ผ่าน settings UI ได้ จึง recompile เมื่อค่าเปลี่ยน
func (s *TextBlockServiceImpl) getReplacer() *rebrand.Replacer {
	raw := s.settings.Get("brand", "competitors")

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.replacer == nil || s.compiled != raw {
		competitors := s.settings.GetList("brand", "competitors", ",")
		if len(competitors) == 0 {
			competitors = rebrand.DefaultCompetitors
		}
		s.replacer = rebrand.New(competitors)
		s.compiled = raw
	}
	return s.replacer
}
