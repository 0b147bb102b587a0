package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
)

var testActor = &domain.User{ID: "u-1", Name: "Test User", Email: "test@pix3ltools.com"}

func TestCreatePageCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		actor   *domain.User
		title   string
		status  string
		tags    []string
		wantErr string
	}{
		{
			name:  "valid minimal",
			actor: testActor,
			title: "Setup Guide",
		},
		{
			name:   "valid with status and tags",
			actor:  testActor,
			title:  "Setup Guide",
			status: "published",
			tags:   []string{"howto"},
		},
		{
			name:    "no actor",
			actor:   nil,
			title:   "Setup Guide",
			wantErr: "authentication required",
		},
		{
			name:    "empty title",
			actor:   testActor,
			title:   "",
			wantErr: "title is required",
		},
		{
			name:    "oversized title",
			actor:   testActor,
			title:   strings.Repeat("x", application.MaxTitleLength+1),
			wantErr: "exceeds",
		},
		{
			name:    "unknown status",
			actor:   testActor,
			title:   "Setup Guide",
			status:  "retired",
			wantErr: "unknown status",
		},
		{
			name:    "blank tag",
			actor:   testActor,
			title:   "Setup Guide",
			tags:    []string{""},
			wantErr: "blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreatePageCommand{
				Actor:  tt.actor,
				Title:  tt.title,
				Status: tt.status,
				Tags:   tt.tags,
			}
			err := cmd.Validate()
			checkCommandErr(t, err, tt.wantErr)
		})
	}
}

func TestUpdatePageCommand_Validate(t *testing.T) {
	bad := "retired"
	good := "archived"
	emptyTitle := ""
	longSummary := strings.Repeat("x", application.MaxSummaryLength+1)

	tests := []struct {
		name    string
		cmd     UpdatePageCommand
		wantErr string
	}{
		{
			name: "valid status-only update",
			cmd:  UpdatePageCommand{Actor: testActor, PageID: "p-1", Status: &good},
		},
		{
			name: "valid no-field update",
			cmd:  UpdatePageCommand{Actor: testActor, PageID: "p-1"},
		},
		{
			name:    "no actor",
			cmd:     UpdatePageCommand{PageID: "p-1"},
			wantErr: "authentication required",
		},
		{
			name:    "missing page ID",
			cmd:     UpdatePageCommand{Actor: testActor},
			wantErr: "page ID is required",
		},
		{
			name:    "empty new title",
			cmd:     UpdatePageCommand{Actor: testActor, PageID: "p-1", Title: &emptyTitle},
			wantErr: "title is required",
		},
		{
			name:    "unknown status",
			cmd:     UpdatePageCommand{Actor: testActor, PageID: "p-1", Status: &bad},
			wantErr: "unknown status",
		},
		{
			name:    "oversized summary",
			cmd:     UpdatePageCommand{Actor: testActor, PageID: "p-1", ChangeSummary: &longSummary},
			wantErr: "change summary exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			checkCommandErr(t, err, tt.wantErr)
		})
	}
}

func TestDeletePageCommand_Validate(t *testing.T) {
	if err := (&DeletePageCommand{Actor: testActor, PageID: "p-1"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (&DeletePageCommand{PageID: "p-1"}).Validate(); !errors.Is(err, application.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
	if err := (&DeletePageCommand{Actor: testActor}).Validate(); err == nil {
		t.Error("expected error for missing page ID")
	}
}

func checkCommandErr(t *testing.T, err error, wantErr string) {
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
}
