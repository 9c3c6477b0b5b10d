package diary_test

import (
	"testing"
	"time"

	"github.com/alkime/devdiary/internal/diary"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want diary.Metadata
	}{
		{
			name: "canonical",
			path: "2024-01-15-001-refactor-myproj.md",
			want: diary.Metadata{
				Date: "2024-01-15", DateFromName: true, Serial: "1", Theme: "refactor", Project: "myproj",
			},
		},
		{
			name: "hyphenated theme and directory",
			path: "/logs/ProjectLogs/2024-02-01-012-add-login-form-webapp.md",
			want: diary.Metadata{
				Date: "2024-02-01", DateFromName: true, Serial: "12", Theme: "add-login-form", Project: "webapp",
			},
		},
		{
			name: "all zero serial",
			path: "2024-02-01-000-setup-tool.md",
			want: diary.Metadata{
				Date: "2024-02-01", DateFromName: true, Serial: "0", Theme: "setup", Project: "tool",
			},
		},
		{
			name: "historical date and theme only",
			path: "2024-03-05-cli-tuning.md",
			want: diary.Metadata{
				Date: "2024-03-05", DateFromName: true, Serial: diary.DefaultSerial,
				Theme: diary.DefaultTheme, Project: diary.DefaultProject,
			},
		},
		{
			name: "serial without theme",
			path: "2024-03-05-007.md",
			want: diary.Metadata{
				Date: "2024-03-05", DateFromName: true, Serial: "7",
				Theme: diary.DefaultTheme, Project: diary.DefaultProject,
			},
		},
		{
			name: "no metadata at all",
			path: "notes.md",
			want: diary.Metadata{
				Date: "2025-03-09", Serial: diary.DefaultSerial,
				Theme: diary.DefaultTheme, Project: diary.DefaultProject,
			},
		},
		{
			name: "date not at start",
			path: "draft-2024-05-06.md",
			want: diary.Metadata{
				Date: "2024-05-06", DateFromName: true, Serial: diary.DefaultSerial,
				Theme: diary.DefaultTheme, Project: diary.DefaultProject,
			},
		},
		{
			name: "prefix before canonical name",
			path: "notes-2024-01-15-003-x-y.md",
			want: diary.Metadata{
				Date: "2024-01-15", DateFromName: true, Serial: "3", Theme: "x", Project: "y",
			},
		},
		{
			name: "serial and compound follow the first date",
			path: "2024-01-15-draft-2024-01-16-004-fix-app.md",
			want: diary.Metadata{
				Date: "2024-01-15", DateFromName: true, Serial: diary.DefaultSerial,
				Theme: diary.DefaultTheme, Project: diary.DefaultProject,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diary.ParseFilename(tt.path, fixedNow)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetadata_ThemeTitle(t *testing.T) {
	tests := []struct {
		theme string
		want  string
	}{
		{theme: "refactor", want: "Refactor"},
		{theme: "add-login-form", want: "Add Login Form"},
		{theme: "API-cleanup", want: "Api Cleanup"},
		{theme: diary.DefaultTheme, want: diary.DefaultTheme},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			assert.Equal(t, tt.want, diary.Metadata{Theme: tt.theme}.ThemeTitle())
		})
	}
}
