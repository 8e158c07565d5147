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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitTo(t *testing.T) {
	all := []Status{StatusPending, StatusShortlisted, StatusRejected, StatusAccepted}
	allowed := map[Status]map[Status]bool{
		StatusPending:     {StatusShortlisted: true, StatusRejected: true},
		StatusShortlisted: {StatusAccepted: true, StatusRejected: true},
	}
	for _, from := range all {
		for _, to := range all {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				assert.Equal(t, allowed[from][to], from.CanTransitTo(to))
			})
		}
	}
	assert.False(t, StatusPending.CanTransitTo("cancelled"))
	assert.False(t, Status("").CanTransitTo(StatusPending))
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusAccepted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusShortlisted.IsTerminal())
}
