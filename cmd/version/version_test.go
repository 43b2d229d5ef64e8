/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/tokencss/internal/version"
)

func TestPrint_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, "text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "tokencss " + version.Get() + "\n"; buf.String() != want {
		t.Errorf("Print() = %q, want %q", buf.String(), want)
	}
}

func TestPrint_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var info version.Build
	if err := json.Unmarshal(buf.Bytes(), &info); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if info.Version != version.Get() {
		t.Errorf("version = %q, want %q", info.Version, version.Get())
	}
}

func TestPrint_UnknownFormat(t *testing.T) {
	err := Print(&bytes.Buffer{}, "yaml")
	if err == nil || !strings.Contains(err.Error(), "yaml") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}
