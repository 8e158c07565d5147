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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeUpload(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	testCases := []struct {
		name     string
		filename string
		want     Upload
		wantErr  error
	}{
		{
			name:     "pdf",
			filename: "cv.pdf",
			want:     Upload{Key: "resumes/1700000000123-cv.pdf", ContentType: "application/pdf"},
		},
		{
			name:     "大写扩展名",
			filename: "My CV.DOCX",
			want: Upload{Key: "resumes/1700000000123-My CV.DOCX",
				ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		},
		{
			name:     "去掉路径",
			filename: `C:\Users\asha\cv.doc`,
			want:     Upload{Key: "resumes/1700000000123-cv.doc", ContentType: "application/msword"},
		},
		{
			name:     "不支持的类型",
			filename: "cv.png",
			wantErr:  ErrInvalidFile,
		},
		{
			name:     "空文件名",
			filename: " ",
			wantErr:  ErrInvalidFile,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := NewResumeUpload(tc.filename, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}
