package energy

import (
	"encoding/csv"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column names of the simulation dataset header.
const (
	ColClimate         = "climate"
	ColType            = "type"
	ColHeatingSetpoint = "heating_sp"
	ColCoolingSetpoint = "cooling_sp"
	ColTerminalHeating = "terminal_heating"
	ColCentralHeating  = "central_heating"
	ColCooling         = "cooling"
	ColFans            = "fans"
	ColHVAC            = "hvac"
)

var columns = []string{
	ColClimate, ColType, ColHeatingSetpoint, ColCoolingSetpoint,
	ColTerminalHeating, ColCentralHeating, ColCooling, ColFans, ColHVAC,
}

// Load reads a dataset from a .csv, .xlsx or .gob file.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []Record
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		records, err = ReadCSV(f)
	case ".xlsx":
		records, err = ReadXLSX(f)
	case ".gob":
		records, err = ReadGob(f)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return NewDataset(records), nil
}

func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return parseRows(rows)
}

// ReadXLSX reads the first sheet of a workbook with the same layout as the CSV.
func ReadXLSX(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return parseRows(rows)
}

func ReadGob(r io.Reader) ([]Record, error) {
	var records []Record
	if err := gob.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

func WriteGob(w io.Writer, records []Record) error {
	return gob.NewEncoder(w).Encode(records)
}

func parseRows(rows [][]string) ([]Record, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows")
	}
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2
		if isBlank(row) {
			continue
		}
		rec, err := parseRecord(row, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(row []string, index map[string]int) (Record, error) {
	cell := func(name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	number := func(name string) (float64, error) {
		v, err := strconv.ParseFloat(cell(name), 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", name, err)
		}
		if !isFinite(v) {
			return 0, fmt.Errorf("column %s: non-finite value", name)
		}
		return v, nil
	}

	climate, ok := ParseClimate(cell(ColClimate))
	if !ok {
		return Record{}, fmt.Errorf("%w %q", ErrUnknownClimate, cell(ColClimate))
	}
	rec := Record{Climate: climate, SystemType: cell(ColType)}
	if rec.SystemType == "" {
		return Record{}, fmt.Errorf("column %s: empty", ColType)
	}

	var err error
	if rec.HeatingSetpoint, err = number(ColHeatingSetpoint); err != nil {
		return Record{}, err
	}
	if rec.CoolingSetpoint, err = number(ColCoolingSetpoint); err != nil {
		return Record{}, err
	}
	energy := []struct {
		name string
		dst  *float64
	}{
		{ColTerminalHeating, &rec.TerminalHeating},
		{ColCentralHeating, &rec.CentralHeating},
		{ColCooling, &rec.Cooling},
		{ColFans, &rec.Fans},
		{ColHVAC, &rec.HVAC},
	}
	for _, e := range energy {
		if *e.dst, err = number(e.name); err != nil {
			return Record{}, err
		}
		if *e.dst < 0 {
			return Record{}, fmt.Errorf("column %s: negative energy %g", e.name, *e.dst)
		}
	}
	return rec, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
