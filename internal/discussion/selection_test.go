// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package discussion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogdeck/blogdeck/internal/models"
)

func TestNewSelectionRequest(t *testing.T) {
	s := models.DefaultDiscussionSettings("b1")
	s.SetCommentsSortOrder(models.SortOrderDescending)

	t.Run("close after", func(t *testing.T) {
		req := NewSelectionRequest(s, ActionSelectCloseAfter)
		assert.Equal(t, []string{"Never", "One day", "One week", "One month"}, req.Titles)
		assert.Equal(t, []int{0, 1, 7, 30}, req.Values)
		assert.Equal(t, 30, req.Current)
		assert.True(t, req.HasDefault)
		assert.Equal(t, 30, req.Default)
	})

	t.Run("sort by follows the setting", func(t *testing.T) {
		req := NewSelectionRequest(s, ActionSelectSortBy)
		assert.Equal(t, []string{"Oldest First", "Newest First"}, req.Titles)
		assert.Equal(t, []int{0, 1}, req.Values)
		assert.Equal(t, 1, req.Current)
		assert.False(t, req.HasDefault)
	})

	t.Run("threading", func(t *testing.T) {
		req := NewSelectionRequest(s, ActionSelectThreading)
		assert.Equal(t, []int{0, 2, 3, 4, 5, 6, 7, 8, 9, 10}, req.Values)
		assert.Len(t, req.Titles, len(req.Values))
		assert.Equal(t, 5, req.Current)

		s.SetCommentsThreading(models.ThreadingDepthDisabled)
		assert.Equal(t, models.ThreadingDepthDisabled, NewSelectionRequest(s, ActionSelectThreading).Current)
	})

	t.Run("paging", func(t *testing.T) {
		req := NewSelectionRequest(s, ActionSelectPaging)
		assert.Equal(t, "None", req.Titles[0])
		assert.Equal(t, []int{0, 50, 100, 200}, req.Values)
		assert.Equal(t, 50, req.Current)
		assert.Equal(t, 50, req.Default)
		assert.Equal(t, 1, req.IndexOf(req.Current))
	})
}

func TestSelectionRequest_Options(t *testing.T) {
	req := NewSelectionRequest(models.DefaultDiscussionSettings("b1"), ActionSelectCloseAfter)
	opts := req.Options()
	assert.Len(t, opts, 4)
	assert.Equal(t, "One week", opts[2].A)
	assert.Equal(t, 7, opts[2].B)
	assert.Equal(t, SelectionResponse{Field: ActionSelectCloseAfter, Value: 7}, req.Respond(2))
}

func TestApplySelection(t *testing.T) {
	t.Run("sort by", func(t *testing.T) {
		s := models.DefaultDiscussionSettings("b1")
		assert.True(t, ApplySelection(s, SelectionResponse{Field: ActionSelectSortBy, Value: 1}))
		assert.Equal(t, models.SortOrderDescending, s.CommentsSortOrder)
		assert.True(t, s.HasChanges())
	})

	t.Run("threading disabled", func(t *testing.T) {
		s := models.DefaultDiscussionSettings("b1")
		ApplySelection(s, SelectionResponse{Field: ActionSelectThreading, Value: models.ThreadingDepthDisabled})
		assert.False(t, s.CommentsThreadingEnabled)
		assert.Equal(t, models.ThreadingDepthDisabled, s.CommentsThreadingDepth)
	})

	t.Run("threading depth", func(t *testing.T) {
		s := &models.DiscussionSettings{BlogID: "b1"}
		ApplySelection(s, SelectionResponse{Field: ActionSelectThreading, Value: 7})
		assert.True(t, s.CommentsThreadingEnabled)
		assert.Equal(t, 7, s.CommentsThreadingDepth)
	})

	t.Run("ignored responses", func(t *testing.T) {
		responses := []SelectionResponse{
			{Field: ActionSelectSortBy, Value: "1"},
			{Field: ActionSelectThreading, Value: 3.0},
			{Field: ActionSelectCloseAfter, Value: 7},
			{Field: ActionSelectPaging, Value: 100},
		}
		for _, resp := range responses {
			s := models.DefaultDiscussionSettings("b1")
			assert.False(t, ApplySelection(s, resp))
			assert.False(t, s.HasChanges())
		}
	})

	t.Run("values the picker does not offer", func(t *testing.T) {
		responses := []SelectionResponse{
			{Field: ActionSelectSortBy, Value: 7},
			{Field: ActionSelectSortBy, Value: -1},
			{Field: ActionSelectThreading, Value: 1},
			{Field: ActionSelectThreading, Value: models.ThreadingDepthMax + 1},
		}
		for _, resp := range responses {
			s := models.DefaultDiscussionSettings("b1")
			before := s.Payload()
			assert.False(t, ApplySelection(s, resp), "%v", resp)
			assert.Equal(t, before, s.Payload())
			assert.False(t, s.HasChanges())
		}
	})
}
