package httpapi

import (
	"bytes"
	"fmt"

	"tcmcare-data/internal/service"

	"github.com/xuri/excelize/v2"
)

// CheckinExportHeader 打卡记录导出表头
var CheckinExportHeader = []string{
	"周起始",
	"体质",
	"打卡天数",
	"饮食完成率",
	"运动完成率",
	"作息完成率",
	"情志完成率",
	"总完成率",
}

// GenerateCheckinExport 生成打卡历史导出 Excel 文件
func GenerateCheckinExport(weeks []*service.WeeklyCheckinResponse) ([]byte, error) {
	f := excelize.NewFile()
	// Note: Don't defer Close() here, because WriteTo needs the file to be open

	sheetName := "打卡记录"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range CheckinExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i := 0; i < len(CheckinExportHeader); i++ {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, 14); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, week := range weeks {
		row := rowIdx + 2 // 第 1 行是表头
		values := []any{
			week.WeekStart,
			week.Constitution,
			week.Summary.DaysChecked,
			formatRate(week.Summary.DietRate),
			formatRate(week.Summary.ExerciseRate),
			formatRate(week.Summary.SleepRate),
			formatRate(week.Summary.MoodRate),
			formatRate(week.Summary.OverallRate),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write excel: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close excel: %w", err)
	}
	return buf.Bytes(), nil
}

func formatRate(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}
