package xlsexport

import "github.com/xuri/excelize/v2"

const fontFamily = "Times New Roman"

type column struct {
	title string
	width float64
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for idx, value := range values {
		cell, err := excelize.CoordinatesToCellName(idx+1, row)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, columns []column) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 11},
	})
	if err != nil {
		return err
	}
	titles := make([]interface{}, 0, len(columns))
	for idx, item := range columns {
		name, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return err
		}
		if err = f.SetColWidth(sheet, name, name, item.width); err != nil {
			return err
		}
		titles = append(titles, item.title)
	}
	if err = applyStyle(f, sheet, style, 1, 1, len(columns), 1); err != nil {
		return err
	}
	return writeRow(f, sheet, 1, titles)
}

// applyDataStyle длинный текст переносится внутри ячейки
func applyDataStyle(f *excelize.File, sheet string, colTo, rowFrom, rowTo int) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
		Font:      &excelize.Font{Family: fontFamily, Size: 11},
	})
	if err != nil {
		return err
	}
	return applyStyle(f, sheet, style, 1, rowFrom, colTo, rowTo)
}

func applyStyle(f *excelize.File, sheet string, style, colFrom, rowFrom, colTo, rowTo int) error {
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}
