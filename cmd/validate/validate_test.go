/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokencss/cmd/project"
	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/document"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/internal/mapfs"
	"bennypowers.dev/tokencss/normalize"
	"bennypowers.dev/tokencss/resolver"
	"bennypowers.dev/tokencss/stylesheet"
)

func silence(t *testing.T) {
	t.Helper()
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
}

func singleTheme(slots config.Slots) *config.Config {
	cfg := &config.Config{Themes: []config.Theme{{Name: "light", Selector: ":root", Slots: slots}}}
	return cfg.WithDefaults()
}

func parse(t *testing.T, src string) *document.Map {
	t.Helper()
	doc, err := document.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestCheck_CollectsEveryError(t *testing.T) {
	doc := parse(t, `{
	  "a": { "value": "{missing}" },
	  "b": { "value": "{c}" },
	  "c": { "value": "{b}" },
	  "d": { "value": null },
	  "e": { "value": { "fontSize": "{gone}", "fontFamily": "{ok}" } },
	  "ok": { "value": "Inter" }
	}`)

	report := Check(doc, singleTheme(nil))

	assert.Equal(t, 6, report.Tokens)
	require.Len(t, report.Errors, 5)
	assert.ErrorIs(t, report.Errors[0], resolver.ErrMissingToken)
	assert.ErrorIs(t, report.Errors[1], resolver.ErrCircularReference)
	assert.ErrorIs(t, report.Errors[2], resolver.ErrCircularReference)
	assert.ErrorIs(t, report.Errors[3], resolver.ErrEmptyValue)
	assert.ErrorIs(t, report.Errors[4], resolver.ErrMissingToken)
	assert.Contains(t, report.Errors[4].Error(), `property "fontSize"`)
}

func TestCheck_Slots(t *testing.T) {
	doc := parse(t, `{
	  "set": {
	    "bg": { "value": "#fff" },
	    "size": { "value": "16px" },
	    "font": { "value": { "fontSize": 16 } }
	  }
	}`)
	cfg := singleTheme(config.Slots{
		{Name: "bg", Path: config.Path{"set", "bg"}},
		{Name: "gap", Path: config.Path{"set", "size"}},
		{Name: "font", Path: config.Path{"set", "font"}},
		{Name: "gone", Path: config.Path{"set", "nothing"}},
	})

	report := Check(doc, cfg)

	assert.Equal(t, 4, report.Slots)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], `slot "gap"`)
	require.Len(t, report.Errors, 2)
	assert.ErrorIs(t, report.Errors[0], normalize.ErrNotScalar)
	assert.ErrorIs(t, report.Errors[1], stylesheet.ErrMissingTopLevelPath)
	var missing *stylesheet.MissingTopLevelPathError
	require.ErrorAs(t, report.Errors[1], &missing)
	assert.Equal(t, "gone", missing.Slot)
	assert.Contains(t, report.Errors[1].Error(), "set > nothing")
}

func TestRun(t *testing.T) {
	silence(t)

	t.Run("valid", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddFile("/project/.config/tokencss.yaml", "themes:\n  - name: light\n    selector: ':root'\n    slots:\n      bg: [c, bg]\n", 0644)
		mfs.AddFile("/project/tokens.dtcg.json", `{ "c": { "bg": { "value": "#000" } } }`, 0644)

		var out bytes.Buffer
		err := Run(mfs, Options{Options: project.Options{Root: "/project"}}, &out)
		require.NoError(t, err)
		assert.Equal(t, "tokens.dtcg.json: 1 tokens, 1 slots, 0 warnings\n", out.String())
	})

	t.Run("invalid", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddFile("/project/.config/tokencss.yaml", "themes: []\n", 0644)
		mfs.AddFile("/project/tokens.dtcg.json", `{ "a": { "value": "{b}" } }`, 0644)

		var out bytes.Buffer
		err := Run(mfs, Options{Options: project.Options{Root: "/project"}}, &out)
		assert.True(t, errors.Is(err, ErrInvalid))
		assert.Empty(t, out.String())
	})
}
