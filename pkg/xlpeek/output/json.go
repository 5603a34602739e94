package output

import (
	"encoding/json"

	"github.com/ukaji3/xlpeek/pkg/xlpeek/models"
)

// ToJSON serializes a workbook report to JSON.
func ToJSON(report *models.WorkbookReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
