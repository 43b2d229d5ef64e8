/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet_test

import (
	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/document"
	"bennypowers.dev/tokencss/index"
	"bennypowers.dev/tokencss/resolver"
	"bennypowers.dev/tokencss/stylesheet"
)

func newEmitter(doc *document.Map, cfg *config.Config) *stylesheet.Emitter {
	return stylesheet.New(doc, resolver.New(index.Build(doc)), cfg)
}
