package dataset

import (
	"fmt"
	"sort"
)

// CommonColumns returns the sorted column names present in both record sets.
func CommonColumns(a, b []Record) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	var common []string
	for col := range a[0] {
		if _, ok := b[0][col]; ok {
			common = append(common, col)
		}
	}
	sort.Strings(common)
	return common
}

// Project restricts records to the given columns. Columns a record lacks
// become empty values.
func Project(records []Record, columns []string) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		projected := make(Record, len(columns))
		for _, col := range columns {
			projected[col] = rec[col]
		}
		out = append(out, projected)
	}
	return out
}

// InnerJoin stacks the rows of two tables restricted to their shared columns
// and writes the result to outPath.
func InnerJoin(file1, file2, outPath string) ([]Record, error) {
	data1, data2, err := readBoth(file1, file2)
	if err != nil {
		return nil, err
	}

	common := CommonColumns(data1, data2)
	if len(common) == 0 {
		return nil, fmt.Errorf("%s and %s share no columns", file1, file2)
	}

	joined := append(Project(data1, common), Project(data2, common)...)
	if err := WriteTable(outPath, common, joined); err != nil {
		return nil, err
	}
	return joined, nil
}

// LeftOuterJoin stacks both tables on the first table's columns; rows from
// the second table fill only the columns it shares.
func LeftOuterJoin(file1, file2, outPath string) ([]Record, error) {
	data1, data2, err := readBoth(file1, file2)
	if err != nil {
		return nil, err
	}

	columns := Columns(data1)
	joined := append(append([]Record(nil), data1...), Project(data2, columns)...)
	if err := WriteTable(outPath, columns, joined); err != nil {
		return nil, err
	}
	return joined, nil
}

// RightOuterJoin stacks both tables on the second table's columns.
func RightOuterJoin(file1, file2, outPath string) ([]Record, error) {
	return LeftOuterJoin(file2, file1, outPath)
}

func readBoth(file1, file2 string) ([]Record, []Record, error) {
	data1, err := ReadTable(file1)
	if err != nil {
		return nil, nil, err
	}
	data2, err := ReadTable(file2)
	if err != nil {
		return nil, nil, err
	}
	if len(data1) == 0 || len(data2) == 0 {
		return nil, nil, fmt.Errorf("both files must contain at least one data row")
	}
	return data1, data2, nil
}
