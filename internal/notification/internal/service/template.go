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
	"html/template"
	"strings"
)

const (
	ConfirmationSubject = "Application Received - OctaIQ Internship"
	defaultStatusColor  = "#FFD700"
)

var statusColors = map[string]string{
	"shortlisted": "#22c55e",
	"rejected":    "#ef4444",
	"accepted":    "#FFD700",
}

const confirmationTmpl = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #000; color: #fff; padding: 20px;">
  <h1 style="color: #FFD700;">Application Received!</h1>
  <p>Hi {{.Name}},</p>
  <p>Thank you for applying to the <strong>{{.RoleTitle}}</strong> internship at OctaIQ.</p>
  <p>We've received your application and will review it shortly. You'll hear from us within 5-7 business days.</p>
  <p>Best regards,<br>The OctaIQ Team</p>
</div>`

const statusUpdateTmpl = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #000; color: #fff; padding: 20px;">
  <h1 style="color: {{.Color}};">Application Update</h1>
  <p>Hi {{.Name}},</p>
  <p>Your application for <strong>{{.RoleTitle}}</strong> has been <strong style="color: {{.Color}}">{{.Status}}</strong>.</p>
  {{- if .Message}}
  <p>{{.Message}}</p>
  {{- end}}
  <p>Best regards,<br>The OctaIQ Team</p>
</div>`

var (
	confirmationTemplate = template.Must(template.New("confirmation").Parse(confirmationTmpl))
	statusUpdateTemplate = template.Must(template.New("status_update").Parse(statusUpdateTmpl))
)

// StatusColor 未知状态使用金色
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return defaultStatusColor
}

// StatusSubject 例如 Application Shortlisted - OctaIQ
func StatusSubject(status string) string {
	title := status
	if status != "" {
		title = strings.ToUpper(status[:1]) + status[1:]
	}
	return fmt.Sprintf("Application %s - OctaIQ", title)
}

func renderConfirmation(name, roleTitle string) (string, error) {
	var buf bytes.Buffer
	err := confirmationTemplate.Execute(&buf, map[string]string{
		"Name":      name,
		"RoleTitle": roleTitle,
	})
	return buf.String(), err
}

func renderStatusUpdate(name, roleTitle, status, message string) (string, error) {
	var buf bytes.Buffer
	err := statusUpdateTemplate.Execute(&buf, map[string]any{
		"Name":      name,
		"RoleTitle": roleTitle,
		"Status":    status,
		"Message":   message,
		"Color":     template.CSS(StatusColor(status)),
	})
	return buf.String(), err
}
