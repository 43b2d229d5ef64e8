/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compile

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokencss/cmd/project"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/resolver"
	"bennypowers.dev/tokencss/stylesheet"
	"bennypowers.dev/tokencss/testutil"
)

func silence(t *testing.T) {
	t.Helper()
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
}

func TestRun_WritesOutput(t *testing.T) {
	silence(t)
	mfs := testutil.NewFixtureFS(t, "project", "/project")

	var stdout bytes.Buffer
	err := Run(mfs, Options{Options: project.Options{Root: "/project"}}, &stdout)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	out, err := mfs.ReadFile("/project/dist/tokens.css")
	require.NoError(t, err)
	testutil.AssertGolden(t, "project-expected.css", out)
}

func TestRun_Stdout(t *testing.T) {
	silence(t)
	mfs := testutil.NewFixtureFS(t, "project", "/project")

	var stdout bytes.Buffer
	err := Run(mfs, Options{Options: project.Options{Root: "/project"}, Stdout: true}, &stdout)
	require.NoError(t, err)

	testutil.AssertGolden(t, "project-expected.css", stdout.Bytes())
	assert.False(t, mfs.Exists("/project/dist/tokens.css"))
}

func TestRun_FlagOverrides(t *testing.T) {
	silence(t)
	mfs := testutil.NewFixtureFS(t, "project", "/project")

	var stdout bytes.Buffer
	err := Run(mfs, Options{
		Options: project.Options{Root: "/project", Prefix: "x", Unit: "rem"},
		Stdout:  true,
	}, &stdout)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "  --x-size-space-100: 4rem;\n")
}

func TestRun_Check(t *testing.T) {
	silence(t)
	mfs := testutil.NewFixtureFS(t, "project", "/project")
	opts := Options{Options: project.Options{Root: "/project"}, Check: true}

	err := Run(mfs, opts, io.Discard)
	assert.True(t, errors.Is(err, ErrStale), "missing output is stale")

	require.NoError(t, Run(mfs, Options{Options: opts.Options}, io.Discard))
	writes := mfs.Writes()

	assert.NoError(t, Run(mfs, opts, io.Discard))

	mfs.AddFile("/project/dist/tokens.css", "/* edited */\n", 0644)
	err = Run(mfs, opts, io.Discard)
	assert.True(t, errors.Is(err, ErrStale))
	assert.Equal(t, writes, mfs.Writes(), "check never writes")
}

func TestRun_FailureWritesNothing(t *testing.T) {
	silence(t)

	// Slots bound by the fixture config, so theme blocks resolve and the
	// size group is reached.
	const lightSet = `"color-sds light": {
	  "Background": { "Default": { "Default": { "value": "#fff" } } },
	  "Text": { "Default": { "Default": { "value": "#000" } } }
	}`

	tests := []struct {
		name     string
		input    string
		sentinel error
		contains string
	}{
		{
			name:     "missing token",
			input:    `{ ` + lightSet + `, "size": { "a": { "value": "{nope}" } } }`,
			sentinel: resolver.ErrMissingToken,
			contains: `missing token "nope"`,
		},
		{
			name:     "cycle",
			input:    `{ ` + lightSet + `, "size": { "a": { "value": "{b}" }, "b": { "value": "{a}" } } }`,
			sentinel: resolver.ErrCircularReference,
			contains: "b -> a -> b",
		},
		{
			name:     "missing slot",
			input:    `{ "color-sds light": {} }`,
			sentinel: stylesheet.ErrMissingTopLevelPath,
			contains: "no token at slot path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := testutil.NewFixtureFS(t, "project", "/project")
			mfs.AddFile("/project/tokens.json", tt.input, 0644)
			writes := mfs.Writes()

			err := Run(mfs, Options{Options: project.Options{Root: "/project"}}, io.Discard)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			assert.ErrorContains(t, err, tt.contains)
			assert.Equal(t, writes, mfs.Writes())
			assert.False(t, mfs.Exists("/project/dist/tokens.css"))
		})
	}
}
