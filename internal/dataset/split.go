package dataset

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Split partitions a CSV file into one file per distinct value of groupCol,
// written under outDir as <value>.csv. The grouping column itself is dropped
// from the output. Returns the written file paths in group order.
func Split(path, groupCol, outDir string) ([]string, error) {
	records, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no data rows to split", path)
	}
	if _, ok := records[0][groupCol]; !ok {
		return nil, fmt.Errorf("%s: no column %q", path, groupCol)
	}

	var columns []string
	for _, col := range Columns(records) {
		if col != groupCol {
			columns = append(columns, col)
		}
	}

	groups := make(map[string][]Record)
	for _, rec := range records {
		key := rec[groupCol]
		groups[key] = append(groups[key], rec)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	written := make([]string, 0, len(keys))
	for _, key := range keys {
		outPath := filepath.Join(outDir, sanitizeFilename(key)+".csv")
		if err := WriteTable(outPath, columns, groups[key]); err != nil {
			return nil, err
		}
		written = append(written, outPath)
	}
	return written, nil
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "blank"
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", " ", "_")
	return replacer.Replace(name)
}
