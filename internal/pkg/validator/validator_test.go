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
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseFloat(t *testing.T) {
	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"37.7749", 37.7749, true},
		{"-122.4194", -122.4194, true},
		{" 0 ", 0, true},
		{"", 0, false},
		{"12.3.4", 0, false},
		{"north", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseFloat(c.input)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("ParseFloat(%q) = (%v, %v), want (%v, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"pending", "accepted", "rejected"}
	if !IsInSlice("accepted", slice) {
		t.Errorf("IsInSlice(accepted) = false, want true")
	}
	if IsInSlice("cancelled", slice) {
		t.Errorf("IsInSlice(cancelled) = true, want false")
	}
}
