package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/creative-sdg/multitulza-sub000/pkg/config"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
)

const maxRowsPerFetch = 50

// Client อ่าน text block จาก Google Sheets ผ่าน service account
type Client struct {
	service *sheetsapi.Service
	logger  *slog.Logger
}

func NewClient(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		return nil, fmt.Errorf("sheets credentials are required (JSON or file path)")
	}
	opts = append(opts, option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope))

	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
		logger:  logger.GetLogger().With("component", "sheets"),
	}, nil
}

// FetchRow อ่าน cell A–Q ของแถวเดียว (1-based)
func (c *Client) FetchRow(ctx context.Context, spreadsheetID, sheetName string, row int) ([]string, error) {
	rows, err := c.FetchRows(ctx, spreadsheetID, sheetName, row, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []string{}, nil
	}
	return rows[0], nil
}

// FetchRows อ่านหลายแถวต่อเนื่องในคำขอเดียว
func (c *Client) FetchRows(ctx context.Context, spreadsheetID, sheetName string, startRow, count int) ([][]string, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}
	if sheetName == "" {
		return nil, fmt.Errorf("sheet name is required")
	}
	if startRow < 1 {
		return nil, fmt.Errorf("row must be >= 1, got %d", startRow)
	}
	if count < 1 || count > maxRowsPerFetch {
		return nil, fmt.Errorf("count must be 1-%d, got %d", maxRowsPerFetch, count)
	}

	readRange := fmt.Sprintf("%s!A%d:Q%d", sheetName, startRow, startRow+count-1)
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}

	c.logger.DebugContext(ctx, "Fetched sheet rows",
		"spreadsheet_id", spreadsheetID,
		"range", readRange,
		"rows", len(resp.Values),
	)

	rows := make([][]string, 0, count)
	for _, rawRow := range resp.Values {
		cells := make([]string, 0, len(rawRow))
		for _, v := range rawRow {
			cells = append(cells, fmt.Sprintf("%v", v))
		}
		rows = append(rows, cells)
	}
	// Sheets API ตัดแถวว่างท้าย range ออก เติมกลับให้ครบตาม count
	for len(rows) < count {
		rows = append(rows, []string{})
	}
	return rows, nil
}
