package application

import (
	"fmt"
	"regexp"
	"strings"
)

// Field bounds shared by every boundary that accepts wiki input.
const (
	MaxTitleLength       = 200
	MaxContentLength     = 100000
	MaxTagLength         = 50
	MaxTags              = 10
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxSummaryLength     = 500

	DefaultPageSize = 20
	MaxPageSize     = 100
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateTitle checks a page title: required, non-blank, length-bounded.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if len(title) > MaxTitleLength {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("title exceeds %d characters", MaxTitleLength)}
	}
	return nil
}

// ValidateContent bounds page content length. Empty content is fine.
func ValidateContent(content string) error {
	if len(content) > MaxContentLength {
		return &ValidationError{Field: "content", Message: fmt.Sprintf("content exceeds %d characters", MaxContentLength)}
	}
	return nil
}

// ValidateTags checks tag count and per-tag length, and rejects blank tags.
func ValidateTags(tags []string) error {
	if len(tags) > MaxTags {
		return &ValidationError{Field: "tags", Message: fmt.Sprintf("at most %d tags allowed", MaxTags)}
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return &ValidationError{Field: "tags", Message: "tags must not be blank"}
		}
		if len(tag) > MaxTagLength {
			return &ValidationError{Field: "tags", Message: fmt.Sprintf("tag %q exceeds %d characters", tag, MaxTagLength)}
		}
	}
	return nil
}

// ValidateName checks a category name: required, length-bounded.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) > MaxNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("name exceeds %d characters", MaxNameLength)}
	}
	return nil
}

// ValidateDescription bounds an optional description.
func ValidateDescription(desc string) error {
	if len(desc) > MaxDescriptionLength {
		return &ValidationError{Field: "description", Message: fmt.Sprintf("description exceeds %d characters", MaxDescriptionLength)}
	}
	return nil
}

// ValidateColor checks a display color in #rrggbb form.
func ValidateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return &ValidationError{Field: "color", Message: "invalid color format, expected #rrggbb"}
	}
	return nil
}

// ValidateSummary bounds an optional change summary.
func ValidateSummary(summary string) error {
	if len(summary) > MaxSummaryLength {
		return &ValidationError{Field: "change_summary", Message: fmt.Sprintf("change summary exceeds %d characters", MaxSummaryLength)}
	}
	return nil
}

// ClampLimit normalizes a caller-supplied page size: zero or negative falls
// back to the default, anything above the cap is cut to the cap.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// ClampOffset normalizes a caller-supplied offset.
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
