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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "#22c55e", StatusColor("shortlisted"))
	assert.Equal(t, "#ef4444", StatusColor("rejected"))
	assert.Equal(t, "#FFD700", StatusColor("accepted"))
	assert.Equal(t, "#FFD700", StatusColor("pending"))
}

func TestStatusSubject(t *testing.T) {
	assert.Equal(t, "Application Shortlisted - OctaIQ", StatusSubject("shortlisted"))
	assert.Equal(t, "Application Rejected - OctaIQ", StatusSubject("rejected"))
	assert.Equal(t, "Application Accepted - OctaIQ", StatusSubject("accepted"))
}

func TestRenderStatusUpdate(t *testing.T) {
	body, err := renderStatusUpdate("Asha", "Backend Intern", "shortlisted", "Interview on Monday")
	require.NoError(t, err)
	assert.Contains(t, body, `<h1 style="color: #22c55e;">Application Update</h1>`)
	assert.Contains(t, body, "Hi Asha,")
	assert.Contains(t, body, "<strong>Backend Intern</strong>")
	assert.Contains(t, body, "<p>Interview on Monday</p>")

	body, err = renderStatusUpdate("Asha", "Backend Intern", "rejected", "")
	require.NoError(t, err)
	assert.Contains(t, body, "#ef4444")
	assert.NotContains(t, body, "<p></p>")
}

func TestRenderConfirmation(t *testing.T) {
	body, err := renderConfirmation("<b>Asha</b>", "Backend Intern")
	require.NoError(t, err)
	assert.Contains(t, body, "Application Received!")
	assert.Contains(t, body, "&lt;b&gt;Asha&lt;/b&gt;")
	assert.Contains(t, body, "<strong>Backend Intern</strong>")
}
