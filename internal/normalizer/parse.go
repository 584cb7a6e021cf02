package normalizer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseCSV reads a delimited-text buffer into loosely-keyed rows. The first
// record is the header; every following record is keyed by it.
func ParseCSV(data []byte) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("failed to parse CSV file: no header row")
	}
	return keyRows(records[0], records[1:]), nil
}

// ParseExcel reads the first sheet of a spreadsheet buffer into loosely-keyed
// rows, with the same header convention as ParseCSV.
func ParseExcel(data []byte) ([]Row, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse Excel file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("failed to parse Excel file: no sheets")
	}

	records, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse Excel file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("failed to parse Excel file: no header row")
	}
	return keyRows(records[0], records[1:]), nil
}

func keyRows(header []string, records [][]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		row := make(Row, len(header))
		for i, key := range header {
			// Excel rows may be shorter than the header when trailing
			// cells are empty.
			if i < len(record) {
				row[strings.TrimSpace(key)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}
