package sheetsclient

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ReadLeaveTable reads a leave table tab as plain text rows.
// Trailing empty cells are dropped by the API, so rows may be ragged.
func (c *Client) ReadLeaveTable(spreadsheetID, tab string) ([][]string, error) {
	values, err := c.GetValues(spreadsheetID, tab)
	if err != nil {
		return nil, fmt.Errorf("failed to read leave table %q: %w", tab, err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("leave table %q is empty", tab)
	}

	c.logger.Debug("Read leave table from sheets",
		zap.String("tab", tab),
		zap.Int("rows", len(values)))

	return toStrings(values), nil
}

func toStrings(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				continue
			}
			cells[i] = strings.TrimSpace(fmt.Sprint(v))
		}
		rows = append(rows, cells)
	}
	return rows
}
