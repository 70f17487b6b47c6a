package output

import (
	"fmt"
	"strings"

	"github.com/e9akhan/finutil/internal/domain"
)

// GenerateReport formats the report with the named formatter and writes it to
// a timestamped file in dir, returning the file path.
func GenerateReport(report *domain.PlanReport, format, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s",
			ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}
	return WriteFormatted(f, report, dir, FileExtension(format))
}
