// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogdeck/blogdeck/test/testutil"
)

func TestNewLoader_Embedded(t *testing.T) {
	l, err := NewLoader()
	require.NoError(t, err)

	browser, err := l.Template("ThemeBrowser")
	require.NoError(t, err)
	assert.Equal(t, "themebrowser", browser.InitialScreen)
	assert.Equal(t, "Themes", browser.Title)
	assert.NotEmpty(t, browser.HelpItems())

	creation, err := l.Template("SiteCreation")
	require.NoError(t, err)
	assert.Equal(t, "sitecreation", creation.InitialScreen)
}

func TestNewLoaderFromFS_Errors(t *testing.T) {
	tests := []struct {
		name     string
		files    fstest.MapFS
		errorMsg string
	}{
		{
			name:     "invalid yaml",
			files:    fstest.MapFS{"ui/a.yaml": {Data: []byte("name: [")}},
			errorMsg: "failed to parse template",
		},
		{
			name:     "missing initial screen",
			files:    fstest.MapFS{"ui/a.yaml": {Data: []byte("name: A\n")}},
			errorMsg: "name and initial_screen are required",
		},
		{
			name: "duplicate name",
			files: fstest.MapFS{
				"ui/a.yaml": {Data: []byte("name: A\ninitial_screen: x\n")},
				"ui/b.yaml": {Data: []byte("name: A\ninitial_screen: y\n")},
			},
			errorMsg: "duplicate name",
		},
		{
			name:     "missing dir",
			files:    fstest.MapFS{},
			errorMsg: "failed to read templates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoaderFromFS(tt.files, "ui")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestLoader_InstantiateInitialScreen(t *testing.T) {
	files := fstest.MapFS{
		"ui/mock.yaml":  {Data: []byte("name: Mock\ninitial_screen: mock\ntitle: Mocked\n")},
		"ui/other.yaml": {Data: []byte("name: Orphan\ninitial_screen: nobody\n")},
		"ui/notes.txt":  {Data: []byte("ignored")},
	}
	l, err := NewLoaderFromFS(files, "ui")
	require.NoError(t, err)

	var seen Template
	l.Register("mock", func(tmpl Template) Screen {
		seen = tmpl
		return testutil.NewMockScreen()
	})

	t.Run("builds the registered kind", func(t *testing.T) {
		screen, err := l.InstantiateInitialScreen("Mock")
		require.NoError(t, err)
		assert.IsType(t, &testutil.MockScreen{}, screen)
		assert.Equal(t, "Mocked", seen.Title)
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := l.InstantiateInitialScreen("Nope")
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("unregistered kind", func(t *testing.T) {
		_, err := l.InstantiateInitialScreen("Orphan")
		assert.ErrorIs(t, err, ErrScreenNotRegistered)
	})

	t.Run("must instantiate", func(t *testing.T) {
		screen := MustInstantiate[*testutil.MockScreen](l, "Mock")
		assert.NotNil(t, screen)

		assert.Panics(t, func() { MustInstantiate[*testutil.MockScreen](l, "Orphan") })
	})
}
