/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"errors"
	"fmt"

	"bennypowers.dev/tokencss/config"
)

var (
	// ErrMissingTopLevelPath indicates an aliased slot's path names no node.
	ErrMissingTopLevelPath = errors.New("no token at slot path")

	// ErrCompositeSlot indicates an aliased slot resolved to a composite value.
	ErrCompositeSlot = errors.New("aliased slot resolved to a composite value")
)

// MissingTopLevelPathError reports the slot whose configured path does not
// lead to a node in the document.
type MissingTopLevelPathError struct {
	Theme string
	Slot  string
	Path  config.Path
}

func (e *MissingTopLevelPathError) Error() string {
	return fmt.Sprintf("%s: %s (slot %q in theme %q)", ErrMissingTopLevelPath, e.Path, e.Slot, e.Theme)
}

func (e *MissingTopLevelPathError) Unwrap() error { return ErrMissingTopLevelPath }
