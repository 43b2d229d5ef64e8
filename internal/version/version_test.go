/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import "testing"

func setBuildVars(t *testing.T, version, commit, tag, dirty string) {
	t.Helper()
	saved := []string{Version, GitCommit, GitTag, GitDirty}
	Version, GitCommit, GitTag, GitDirty = version, commit, tag, dirty
	t.Cleanup(func() {
		Version, GitCommit, GitTag, GitDirty = saved[0], saved[1], saved[2], saved[3]
	})
}

func TestGet_LdflagsVersionWins(t *testing.T) {
	setBuildVars(t, "v1.2.3", "abcdef0123", "v1.0.0", "")
	if got := Get(); got != "v1.2.3" {
		t.Errorf("Get() = %q, want v1.2.3", got)
	}
}

func TestInfo_Dirty(t *testing.T) {
	setBuildVars(t, "v1.2.3", "abc", "v1.2.3", "dirty")
	info := Info()
	if !info.Dirty {
		t.Error("expected Dirty to be true")
	}
	if info.Version != "v1.2.3" {
		t.Errorf("Version = %q", info.Version)
	}
}

func TestShortCommit(t *testing.T) {
	if got := shortCommit("0123456789"); got != "0123456" {
		t.Errorf("shortCommit = %q", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Errorf("shortCommit = %q", got)
	}
}
