package application

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr string
	}{
		{name: "valid", title: "Setup Guide"},
		{name: "single char", title: "a"},
		{name: "at the bound", title: strings.Repeat("x", MaxTitleLength)},
		{name: "empty", title: "", wantErr: "title is required"},
		{name: "whitespace only", title: "   \t", wantErr: "title is required"},
		{name: "too long", title: strings.Repeat("x", MaxTitleLength+1), wantErr: "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			checkValidation(t, err, tt.wantErr)
		})
	}
}

func TestValidateTags(t *testing.T) {
	tooMany := make([]string, MaxTags+1)
	for i := range tooMany {
		tooMany[i] = "tag"
	}

	tests := []struct {
		name    string
		tags    []string
		wantErr string
	}{
		{name: "nil", tags: nil},
		{name: "empty", tags: []string{}},
		{name: "a few tags", tags: []string{"howto", "infra"}},
		{name: "too many", tags: tooMany, wantErr: "at most"},
		{name: "blank tag", tags: []string{"ok", " "}, wantErr: "blank"},
		{name: "oversized tag", tags: []string{strings.Repeat("x", MaxTagLength+1)}, wantErr: "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTags(tt.tags)
			checkValidation(t, err, tt.wantErr)
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr string
	}{
		{name: "lowercase hex", color: "#8b5cf6"},
		{name: "uppercase hex", color: "#8B5CF6"},
		{name: "missing hash", color: "8b5cf6", wantErr: "invalid color"},
		{name: "short", color: "#fff", wantErr: "invalid color"},
		{name: "not hex", color: "#zzzzzz", wantErr: "invalid color"},
		{name: "empty", color: "", wantErr: "invalid color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.color)
			checkValidation(t, err, tt.wantErr)
		})
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: DefaultPageSize},
		{in: -5, want: DefaultPageSize},
		{in: 1, want: 1},
		{in: DefaultPageSize, want: DefaultPageSize},
		{in: MaxPageSize, want: MaxPageSize},
		{in: MaxPageSize + 1, want: MaxPageSize},
		{in: 10000, want: MaxPageSize},
	}

	for _, tt := range tests {
		if got := ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampOffset(t *testing.T) {
	if got := ClampOffset(-1); got != 0 {
		t.Errorf("ClampOffset(-1) = %d, want 0", got)
	}
	if got := ClampOffset(40); got != 40 {
		t.Errorf("ClampOffset(40) = %d, want 40", got)
	}
}

func checkValidation(t *testing.T, err error, wantErr string) {
	t.Helper()
	if wantErr == "" {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Errorf("expected error containing %q, got nil", wantErr)
		return
	}
	if !strings.Contains(err.Error(), wantErr) {
		t.Errorf("expected error containing %q, got %q", wantErr, err.Error())
	}
	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Errorf("expected *ValidationError, got %T", err)
		return
	}
	if vErr.Field == "" {
		t.Error("ValidationError has empty field")
	}
}
