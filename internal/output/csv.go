package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"audit-report/internal/model"
)

// WriteCSV writes one row per emitted item to path. The file is UTF-8 with
// BOM for clean Excel opening on Windows.
func WriteCSV(path string, rep *model.Report, opts Options) error {
	var buf bytes.Buffer
	// UTF-8 BOM for Excel
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Section", "ID", "Label", "Status", "Value", "Notes", "Photos"})
	for _, s := range BuildExport(rep, opts.Location).Sections {
		for _, it := range s.Items {
			_ = w.Write([]string{s.Label, it.ID, it.Label, string(it.Status), it.Value, it.Notes, strconv.Itoa(it.Photos)})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}
