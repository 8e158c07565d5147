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

// Status 申请的状态
//
//	pending ──> shortlisted ──> accepted
//	   │             │
//	   └──> rejected <┘
//
// rejected 和 accepted 是终态
type Status string

const (
	StatusPending     Status = "pending"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusAccepted    Status = "accepted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusAccepted
}

// CanTransitTo 只允许四条边，任何回退或者原地流转都是非法的
func (s Status) CanTransitTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusShortlisted || target == StatusRejected
	case StatusShortlisted:
		return target == StatusAccepted || target == StatusRejected
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}
