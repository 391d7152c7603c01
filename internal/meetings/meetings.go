// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package meetings assembles seminar meetings from the graph: each
// meeting's timestamp, its ordered agenda rendered to HTML, and the roster
// of entities it declares as involved.
package meetings

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/seminar-engine/internal/entities"
	"github.com/pdiddy/seminar-engine/internal/rdf"
	"github.com/pdiddy/seminar-engine/pkg/types"
)

// Assemble builds every meeting the graph declares, in graph discovery
// order (not chronological order — callers wanting that sort by Date).
// bibliography maps bibliographic record ids to rendered citation HTML.
//
// Meetings share no mutable state, so they are assembled concurrently;
// any single meeting failing fails the whole call.
func Assemble(g *rdf.Graph, bibliography map[string]string) ([]types.Meeting, error) {
	meetingTerms := g.ObjectsOfAny(rdf.Expand(":meeting"))

	out := make([]types.Meeting, len(meetingTerms))
	var eg errgroup.Group
	for i, m := range meetingTerms {
		i, m := i, m
		eg.Go(func() error {
			meeting, err := assembleOne(g, bibliography, m)
			if err != nil {
				return fmt.Errorf("assembling meeting <%s>: %w", m.Value, err)
			}
			out[i] = meeting
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func assembleOne(g *rdf.Graph, bibliography map[string]string, m rdf.Term) (types.Meeting, error) {
	date, err := meetingTime(g, m)
	if err != nil {
		return types.Meeting{}, err
	}

	scheduleHead, err := g.One(m, rdf.Expand(":schedule"))
	if err != nil {
		return types.Meeting{}, err
	}
	items, err := g.List(scheduleHead)
	if err != nil {
		return types.Meeting{}, err
	}

	var html strings.Builder
	for _, run := range segment(items) {
		if run[0].Kind == rdf.IRI {
			html.WriteString(readingsHTML(g, bibliography, run))
			continue
		}
		notes, err := notesHTML(g, run)
		if err != nil {
			return types.Meeting{}, err
		}
		html.WriteString(notes)
	}

	involved := g.ObjectsOf(m, rdf.Expand("lode:involved"))
	roster, err := entities.Classify(g.SubgraphFrom(involved), entities.DefaultCategories())
	if err != nil {
		return types.Meeting{}, err
	}

	return types.Meeting{
		Fragment: rdf.Fragment(m),
		Date:     date,
		Entities: roster,
		HTML:     html.String(),
	}, nil
}

// meetingTime resolves the timestamp chain lode:atTime -> time:hasBeginning
// -> time:inXSDDateTimeStamp. Time data is mandatory: a break anywhere in
// the chain is a structural error naming the meeting.
func meetingTime(g *rdf.Graph, m rdf.Term) (time.Time, error) {
	chainErr := &rdf.StructuralError{
		Resource: m.Value,
		Reason:   "meeting time triples are incorrectly defined",
	}

	interval, ok := g.FirstObjectOf(m, rdf.Expand("lode:atTime"))
	if !ok {
		return time.Time{}, chainErr
	}
	beginning, ok := g.FirstObjectOf(interval, rdf.Expand("time:hasBeginning"))
	if !ok {
		return time.Time{}, chainErr
	}
	stamp, ok := g.FirstObjectOf(beginning, rdf.Expand("time:inXSDDateTimeStamp"))
	if !ok {
		return time.Time{}, chainErr
	}

	date, err := time.Parse(time.RFC3339, stamp.TextValue())
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing meeting timestamp %q: %w", stamp.TextValue(), err)
	}
	return date, nil
}

// segment splits schedule items into maximal contiguous runs of the same
// term kind. Grouping is adjacency-based: two readings separated by a note
// land in different segments.
func segment(items []rdf.Term) [][]rdf.Term {
	var segments [][]rdf.Term
	for _, item := range items {
		if n := len(segments); n > 0 && segments[n-1][0].Kind == item.Kind {
			segments[n-1] = append(segments[n-1], item)
			continue
		}
		segments = append(segments, []rdf.Term{item})
	}
	return segments
}
