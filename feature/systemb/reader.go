package systemb

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Read parses a System B export: delimited text with a header row.
// Columns are mapped by header name, so their order is irrelevant and unknown
// columns are ignored. Missing or empty fields keep the zero value. Rows with
// no values at all are skipped, and an export without a header has no records.
// Order numbers and client names are kept byte-exact; only the date, total and
// status fields are trimmed before conversion.
func Read(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)

	// Strip a UTF-8 BOM written by spreadsheet tools
	if bom, err := br.Peek(3); err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = br.Discard(3)
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1 // short rows resolve to defaults

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", ErrMalformed, err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	records := []Record{}
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		line, _ := reader.FieldPos(0)
		row := newRow(index, fields, line)
		if row.isEmpty() {
			continue
		}

		rec, err := row.record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// row gives name-based access to one CSV record.
type row struct {
	index  map[string]int
	fields []string
	line   int
}

func newRow(index map[string]int, fields []string, line int) row {
	return row{index: index, fields: fields, line: line}
}

// get returns the raw field value, or "" when the column or field is missing.
func (r row) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// trimmed returns the field value without surrounding whitespace.
func (r row) trimmed(column string) string {
	return strings.TrimSpace(r.get(column))
}

func (r row) isEmpty() bool {
	for _, f := range r.fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func (r row) record() (Record, error) {
	rec := Record{
		OrderNum:   r.get(ColumnOrderNum),
		ClientName: r.get(ColumnClientName),
		DatePlaced: r.trimmed(ColumnDatePlaced),
	}

	if v := r.trimmed(ColumnTotal); v != "" {
		total, err := decimal.NewFromString(v)
		if err != nil {
			return Record{}, &RowError{Row: r.line, Column: ColumnTotal, Value: v, Err: err}
		}
		rec.Total = total
	}

	if v := r.trimmed(ColumnOrderStatus); v != "" {
		code, err := strconv.Atoi(v)
		if err != nil {
			return Record{}, &RowError{Row: r.line, Column: ColumnOrderStatus, Value: v, Err: err}
		}
		rec.OrderStatus = code
	}

	return rec, nil
}
