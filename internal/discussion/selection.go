// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package discussion

import (
	"github.com/samber/lo"

	"github.com/blogdeck/blogdeck/internal/models"
)

// SelectionRequest describes a picker the host should present.
// Titles and Values are parallel.
type SelectionRequest struct {
	Field   Action
	Title   string
	Titles  []string
	Values  []int
	Current int
	// Default is marked in the picker when HasDefault is set.
	Default    int
	HasDefault bool
}

// SelectionResponse carries the value the user picked for Field.
type SelectionResponse struct {
	Field Action
	Value any
}

// Options pairs each title with its value.
func (r SelectionRequest) Options() []lo.Tuple2[string, int] {
	return lo.Zip2(r.Titles, r.Values)
}

// IndexOf returns the position of value in Values, or -1.
func (r SelectionRequest) IndexOf(value int) int {
	return lo.IndexOf(r.Values, value)
}

// Respond builds the response for the option at index i.
func (r SelectionRequest) Respond(i int) SelectionResponse {
	return SelectionResponse{Field: r.Field, Value: r.Values[i]}
}

// NewSelectionRequest builds the picker for a selection action. Close After
// and Paging offer fixed choices that are not backed by a stored setting.
func NewSelectionRequest(s *models.DiscussionSettings, field Action) SelectionRequest {
	switch field {
	case ActionSelectCloseAfter:
		return SelectionRequest{
			Field:      field,
			Title:      field.Title(),
			Titles:     []string{"Never", "One day", "One week", "One month"},
			Values:     []int{0, 1, 7, 30},
			Current:    30,
			Default:    30,
			HasDefault: true,
		}
	case ActionSelectSortBy:
		return SelectionRequest{
			Field:   field,
			Title:   field.Title(),
			Titles:  models.SortTitles,
			Values:  models.SortValues,
			Current: int(s.CommentsSortOrder),
		}
	case ActionSelectThreading:
		return SelectionRequest{
			Field:   field,
			Title:   field.Title(),
			Titles:  models.ThreadingDepthTitles(),
			Values:  models.ThreadingDepthValues(),
			Current: s.EffectiveThreadingDepth(),
		}
	case ActionSelectPaging:
		return SelectionRequest{
			Field:      field,
			Title:      field.Title(),
			Titles:     []string{"None", "50 comments per page", "100 comments per page", "200 comments per page"},
			Values:     []int{0, 50, 100, 200},
			Current:    50,
			Default:    50,
			HasDefault: true,
		}
	default:
		return SelectionRequest{Field: field, Title: field.Title()}
	}
}

// ApplySelection stores a picked value. Only Sort By and Threading are backed
// by settings; other fields, non-int values and values the picker does not
// offer are ignored. It reports whether s was mutated.
func ApplySelection(s *models.DiscussionSettings, resp SelectionResponse) bool {
	value, ok := resp.Value.(int)
	if !ok {
		return false
	}
	if !lo.Contains(NewSelectionRequest(s, resp.Field).Values, value) {
		return false
	}

	switch resp.Field {
	case ActionSelectSortBy:
		s.SetCommentsSortOrder(models.SortOrder(value))
		return true
	case ActionSelectThreading:
		s.SetCommentsThreading(value)
		return true
	default:
		return false
	}
}
