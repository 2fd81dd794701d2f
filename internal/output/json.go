package output

import (
	"encoding/json"

	"audit-report/internal/model"
)

// WriteJSON writes the classified export of rep to path.
func WriteJSON(path string, rep *model.Report, opts Options) error {
	data, err := json.MarshalIndent(BuildExport(rep, opts.Location), "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, append(data, '\n'))
}
