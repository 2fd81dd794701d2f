// Package record reads audit exports: leading key/value metadata rows, a
// header row starting with "ID", then one item per row.
package record

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"audit-report/internal/model"
)

// HeaderSentinel is the first cell of the header row.
const HeaderSentinel = "ID"

var bom = []byte{0xEF, 0xBB, 0xBF}

// Load parses a comma-separated audit export. Malformed rows are tolerated:
// short rows are padded with empty strings and extra cells are ignored. A
// source without a header row yields its metadata and no items.
func Load(r io.Reader) (model.Metadata, []model.Item, error) {
	var md model.Metadata

	raw, err := io.ReadAll(r)
	if err != nil {
		return md, nil, fmt.Errorf("record: read: %w", err)
	}
	raw = bytes.TrimPrefix(raw, bom)

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var header []string
	for header == nil {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return md, nil, nil
		}
		if err != nil {
			return md, nil, fmt.Errorf("record: metadata: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		if row[0] == HeaderSentinel {
			header = row
			break
		}
		if len(row) >= 2 {
			md.Set(row[0], row[1])
		}
	}

	var items []model.Item
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return md, nil, fmt.Errorf("record: items: %w", err)
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}
		items = append(items, decode(header, row))
	}
	return md, items, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (model.Metadata, []model.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Metadata{}, nil, fmt.Errorf("record: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// decode aligns row to header by position. Columns the model does not know
// are ignored; for duplicated header names the rightmost column wins.
func decode(header, row []string) model.Item {
	var it model.Item
	for i, col := range header {
		v := ""
		if i < len(row) {
			v = row[i]
		}
		switch col {
		case "ID":
			it.ID = v
		case "Type":
			it.Type = v
		case "Label":
			it.Label = v
		case "Primary":
			it.Primary = v
		case "Secondary":
			it.Secondary = v
		case "Note":
			it.Note = v
		case "Media":
			it.Media = v
		}
	}
	return it
}
