// Package tracking implements the date handling shared by the item
// detail view and the update-tracking persistence path: conversion
// between the MM/DD/YYYY display form and the canonical YYYY-MM-DD wire
// form, lateness derivation across lifecycle stages, and the
// classification of tracking fields.
package tracking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DisplayLayout is the date form shown to the user.
const DisplayLayout = "01/02/2006"

// NoDateValue is the sentinel a date picker sends when the user clears a
// selection.
const NoDateValue = "none"

var canonicalRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

var canonicalLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ToDisplay converts a canonical date to MM/DD/YYYY. Input that cannot
// be parsed is returned unchanged so a malformed backend value still
// renders rather than disappearing.
func ToDisplay(canonical string) string {
	if canonical == "" {
		return ""
	}
	t, err := parseCanonical(canonical)
	if err != nil {
		return canonical
	}
	return t.Format(DisplayLayout)
}

// ToCanonical converts a display-form date to the canonical YYYY-MM-DD
// form the backend stores. Already-canonical input is returned as-is.
// The second return is false when the input carries no date: empty,
// the "none" sentinel, or anything that does not split into three
// numeric month/day/year parts.
func ToCanonical(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == NoDateValue {
		return "", false
	}
	if canonicalRe.MatchString(s) {
		return s, true
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return "", false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// parseDate accepts either the display or the canonical form. The
// display form is split by hand rather than parsed with a fixed layout
// so single-digit months and days are tolerated.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") && !strings.Contains(s, "T") {
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("not a month/day/year date: %q", s)
		}
		month, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		day, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, fmt.Errorf("not a month/day/year date: %q", s)
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
	}
	return parseCanonical(s)
}

func parseCanonical(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range canonicalLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
