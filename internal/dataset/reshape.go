package dataset

import "fmt"

// RecordsToColumns converts row-oriented records into column-oriented lists.
// Every record contributes one entry per column it carries.
func RecordsToColumns(records []Record) map[string][]string {
	columns := make(map[string][]string)
	for _, rec := range records {
		for col, value := range rec {
			columns[col] = append(columns[col], value)
		}
	}
	return columns
}

// ColumnsToRecords converts column-oriented lists back into records.
// All columns must have the same length.
func ColumnsToRecords(columns map[string][]string) ([]Record, error) {
	n := -1
	for col, values := range columns {
		if n == -1 {
			n = len(values)
			continue
		}
		if len(values) != n {
			return nil, fmt.Errorf("column %q has %d values, expected %d", col, len(values), n)
		}
	}
	if n <= 0 {
		return nil, nil
	}

	records := make([]Record, n)
	for i := range records {
		records[i] = make(Record, len(columns))
	}
	for col, values := range columns {
		for i, value := range values {
			records[i][col] = value
		}
	}
	return records, nil
}
