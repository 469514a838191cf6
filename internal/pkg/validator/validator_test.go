package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2026-01-15", true},
		{"2026-02-29", false},
		{"2024-02-29", true},
		{"15-01-2026", false},
		{"2026/01/15", false},
		{"", false},
	}
	for _, c := range cases {
		_, got := IsValidDate(c.input)
		if got != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"APPROVED", "REJECTED"}
	cases := []struct {
		value string
		want  bool
	}{
		{"APPROVED", true},
		{"REJECTED", true},
		{"PENDING", false},
		{"approved", false},
		{"", false},
	}
	for _, c := range cases {
		got := IsInSlice(c.value, statuses)
		if got != c.want {
			t.Errorf("IsInSlice(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}
