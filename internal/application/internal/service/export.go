// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ecodeclub/internhub/internal/application/internal/domain"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Applications"

var exportHeaders = []string{
	"ID", "Full Name", "Email", "Phone", "University", "Course", "Year", "CGPA",
	"Role", "Department", "AI Score", "AI Feedback", "Status", "Applied At",
}

func exportApplications(apps []domain.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "000000"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFD700"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	if err = f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err = f.SetCellStyle(exportSheet, "A1", last, headerStyle); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(exportSheet, "B", "F", 22)
	_ = f.SetColWidth(exportSheet, "I", "J", 22)
	_ = f.SetColWidth(exportSheet, "L", "L", 60)

	for i, app := range apps {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			app.ID, app.FullName, app.Email, app.Phone, app.University, app.Course,
			app.Year, app.CGPA, app.Role.Title, app.Role.Department,
			app.AIScore, app.AIFeedback, app.Status.String(),
			time.UnixMilli(app.Ctime).Format(time.DateTime),
		}
		if err = f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("写入第 %d 行失败: %w", i+2, err)
		}
	}

	_ = f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	var buf bytes.Buffer
	if err = f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
