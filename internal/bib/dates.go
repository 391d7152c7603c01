// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/seminar-engine/pkg/types"
)

// ParseDate parses raw date text into CSL date-parts, tolerating partial
// precision: "2019", "2019-03", "2019-03-14", slash separators, and full
// RFC 3339 timestamps. Empty input yields a nil date; any other text that
// does not parse is an error.
func ParseDate(raw string) (*types.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return &types.Date{DateParts: [][]int{{ts.Year(), int(ts.Month()), ts.Day()}}}, nil
	}

	sep := "-"
	if strings.Contains(raw, "/") {
		sep = "/"
	}
	fields := strings.Split(raw, sep)
	if len(fields) > 3 {
		return nil, fmt.Errorf("unparseable date %q", raw)
	}

	var parts []int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("unparseable date %q", raw)
		}
		switch i {
		case 0:
			if n <= 0 {
				return nil, fmt.Errorf("unparseable date %q: bad year", raw)
			}
		case 1:
			if n < 1 || n > 12 {
				return nil, fmt.Errorf("unparseable date %q: bad month", raw)
			}
		case 2:
			if n < 1 || n > 31 {
				return nil, fmt.Errorf("unparseable date %q: bad day", raw)
			}
		}
		parts = append(parts, n)
	}
	return &types.Date{DateParts: [][]int{parts}}, nil
}
