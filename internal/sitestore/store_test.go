// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitestore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/seminar-engine/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "site", "seminar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestExportAndSummarize(t *testing.T) {
	s := openTestStore(t)

	bibliography := map[string]string{
		"smith-2019": "<div>Smith</div>",
		"jones-2020": "<div>Jones</div>",
	}
	meetings := []types.Meeting{
		{
			Fragment: "meeting-2019-04",
			Date:     time.Date(2019, 4, 1, 18, 0, 0, 0, time.UTC),
			HTML:     "<div>agenda</div>",
			Entities: []types.Entity{
				{Category: types.CategoryPeople, ID: "p1", Label: "Ada Babbage", Fragment: "person-ab", Roles: []string{"author", "editor"}},
			},
		},
		{
			Fragment: "meeting-2019-05",
			Date:     time.Date(2019, 5, 6, 18, 0, 0, 0, time.UTC),
			HTML:     "<div>agenda two</div>",
		},
	}

	require.NoError(t, s.Export(bibliography, meetings))

	sum, err := s.Summarize()
	require.NoError(t, err)
	assert.Equal(t, Summary{Citations: 2, Meetings: 2, Entities: 1}, sum)
}

func TestExportReplacesPreviousRows(t *testing.T) {
	s := openTestStore(t)

	first := []types.Meeting{{Fragment: "m1", Date: time.Now(), HTML: "a"}}
	require.NoError(t, s.Export(map[string]string{"a": "x", "b": "y"}, first))

	second := []types.Meeting{{Fragment: "m2", Date: time.Now(), HTML: "b"}}
	require.NoError(t, s.Export(map[string]string{"c": "z"}, second))

	sum, err := s.Summarize()
	require.NoError(t, err)
	assert.Equal(t, Summary{Citations: 1, Meetings: 1, Entities: 0}, sum)

	var fragment string
	require.NoError(t, s.db.QueryRow("SELECT fragment FROM meetings").Scan(&fragment))
	assert.Equal(t, "m2", fragment)
}

func TestSummarizeEmptyStore(t *testing.T) {
	s := openTestStore(t)
	sum, err := s.Summarize()
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
}
