package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-peaks/faults"
	"github.com/andareed/siftly-peaks/fileio"
	"github.com/andareed/siftly-peaks/logging"
	"github.com/xuri/excelize/v2"
)

type Format int

const (
	FormatXLSX Format = iota
	FormatCSV
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return "xlsx"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, faults.Newf(faults.KindValidation, "export", "unsupported file extension %q (want .xlsx, .csv or .json)", filepath.Ext(path))
	}
}

type Options struct {
	// MissingMarker is written for missing cells in CSV. xlsx leaves the cell
	// blank and JSON writes null.
	MissingMarker string
	Sheet         string
}

const defaultSheet = "Extrema"

// Write stores the table at path in the format named by its extension.
func Write(path string, t Table, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	logging.WithField("path", path).Infof("export: writing %d rows as %s", t.Len(), format)
	return fileio.WriteAtomic(path, func(w io.Writer) error {
		switch format {
		case FormatCSV:
			return WriteCSV(w, t, opts.MissingMarker)
		case FormatJSON:
			return WriteJSON(w, t)
		default:
			return WriteXLSX(w, t, opts.Sheet)
		}
	})
}

func WriteCSV(w io.Writer, t Table, marker string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		out := make([]string, len(row))
		for j, c := range row {
			out[j] = c.Format(marker)
		}
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteTSV is the clipboard flavour: tab separated, missing cells blank.
func WriteTSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(Header); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		out := make([]string, len(row))
		for j, c := range row {
			out[j] = c.Format("")
		}
		if err := cw.Write(out); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteXLSX(w io.Writer, t Table, sheet string) error {
	if sheet == "" {
		sheet = defaultSheet
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	for col, name := range Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for i := 0; i < t.Len(); i++ {
		for col, c := range t.Row(i) {
			if !c.Valid {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, c.Value); err != nil {
				return fmt.Errorf("write row %d: %w", i, err)
			}
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// --- JSON wire format ---

const jsonVersion = 1

type tableDTO struct {
	Version int          `json:"version"`
	Columns []string     `json:"columns"`
	Rows    [][]*float64 `json:"rows"`
}

func toDTO(t Table) tableDTO {
	dto := tableDTO{
		Version: jsonVersion,
		Columns: append([]string(nil), Header...),
		Rows:    make([][]*float64, 0, t.Len()),
	}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		out := make([]*float64, len(row))
		for j, c := range row {
			if c.Valid {
				v := c.Value
				out[j] = &v
			}
		}
		dto.Rows = append(dto.Rows, out)
	}
	return dto
}

func WriteJSON(w io.Writer, t Table) error {
	data, err := json.MarshalIndent(toDTO(t), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// ReadJSON loads a table written by WriteJSON.
func ReadJSON(r io.Reader) (Table, error) {
	var dto tableDTO
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return Table{}, err
	}
	if dto.Version != jsonVersion {
		return Table{}, fmt.Errorf("table version %d not supported (want %d)", dto.Version, jsonVersion)
	}
	var t Table
	for i, row := range dto.Rows {
		if len(row) != len(Header) {
			return Table{}, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(Header))
		}
		cells := make([]Cell, len(row))
		for j, v := range row {
			if v != nil {
				cells[j] = Val(*v)
			}
		}
		t.PeakX = append(t.PeakX, cells[0])
		t.PeakY = append(t.PeakY, cells[1])
		t.TroughX = append(t.TroughX, cells[2])
		t.TroughY = append(t.TroughY, cells[3])
	}
	return t, nil
}
