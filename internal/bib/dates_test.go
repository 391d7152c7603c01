package bib

import (
	"reflect"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want [][]int
	}{
		{"2019", [][]int{{2019}}},
		{"2019-03", [][]int{{2019, 3}}},
		{"2019-03-14", [][]int{{2019, 3, 14}}},
		{"1907/06", [][]int{{1907, 6}}},
		{"  1938  ", [][]int{{1938}}},
		{"2019-04-01T18:00:00Z", [][]int{{2019, 4, 1}}},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.raw)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.raw, err)
			continue
		}
		if !reflect.DeepEqual(got.DateParts, tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.raw, got.DateParts, tt.want)
		}
	}
}

func TestParseDateEmpty(t *testing.T) {
	got, err := ParseDate("   ")
	if err != nil {
		t.Fatalf("ParseDate on empty input: %v", err)
	}
	if got != nil {
		t.Errorf("ParseDate on empty input = %v, want nil", got)
	}
}

func TestParseDateErrors(t *testing.T) {
	for _, raw := range []string{
		"sometime",
		"2019-13",
		"2019-02-40",
		"2019-03-14-07",
		"-5",
	} {
		if _, err := ParseDate(raw); err == nil {
			t.Errorf("ParseDate(%q) should fail", raw)
		}
	}
}
