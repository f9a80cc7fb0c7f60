package definition

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Sections"

// Spreadsheet layout, one section per row:
//
//	A: name   B: kind   C...: key=value
//
// Keys other than grade, description and reinforcement are dimensions.
// A first row starting with "name" is taken as a header.

func readXLSX(path string) ([]Definition, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var defs []Definition
	for i, row := range rows {
		if len(row) == 0 || isBlank(row) {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "name") {
			continue
		}

		def, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func parseRow(row []string) (Definition, error) {
	if len(row) < 2 || strings.TrimSpace(row[1]) == "" {
		return Definition{}, fmt.Errorf("missing kind in column B")
	}

	def := Definition{
		Name:       strings.TrimSpace(row[0]),
		Kind:       strings.TrimSpace(row[1]),
		Dimensions: make(map[string]any),
	}

	for _, cell := range row[2:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		key, value, ok := strings.Cut(cell, "=")
		if !ok {
			return Definition{}, fmt.Errorf("cell %q: expected key=value", cell)
		}
		key = strings.TrimSpace(key)

		switch strings.ToLower(key) {
		case "grade":
			def.Grade = strings.TrimSpace(value)
		case "description":
			def.Description = strings.TrimSpace(value)
		case "reinforcement", "rebar":
			layers, err := ParseLayers(value)
			if err != nil {
				return Definition{}, err
			}
			def.Reinforcement = append(def.Reinforcement, layers...)
		default:
			def.Dimensions[key] = ParseValue(value)
		}
	}
	return def, nil
}

func writeXLSX(path string, defs []Definition) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &[]any{"name", "kind", "values (key=value)"}); err != nil {
		return err
	}

	for i, d := range defs {
		row := []any{d.Name, d.Kind}
		for _, k := range d.DimensionNames() {
			row = append(row, fmt.Sprintf("%s=%v", k, d.Dimensions[k]))
		}
		if len(d.Reinforcement) > 0 {
			row = append(row, "reinforcement="+FormatLayers(d.Reinforcement))
		}
		if d.Grade != "" {
			row = append(row, "grade="+d.Grade)
		}
		if d.Description != "" {
			row = append(row, "description="+d.Description)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
