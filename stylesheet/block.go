/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"fmt"
	"strings"
)

// Declaration is one custom property assignment.
type Declaration struct {
	Name  string
	Value string
}

// Block is a rule set of declarations under one selector.
type Block struct {
	// Comment is written on its own line before the block when set.
	Comment string

	Selector     string
	Declarations []Declaration
}

// Render appends the block and a trailing blank line to sb.
func (b *Block) Render(sb *strings.Builder) {
	if b.Comment != "" {
		fmt.Fprintf(sb, "/* %s */\n", b.Comment)
	}
	sb.WriteString(b.Selector)
	sb.WriteString(" {\n")
	for _, d := range b.Declarations {
		fmt.Fprintf(sb, "  %s: %s;\n", d.Name, d.Value)
	}
	sb.WriteString("}\n\n")
}

// String returns the rendered block.
func (b *Block) String() string {
	var sb strings.Builder
	b.Render(&sb)
	return sb.String()
}

// Banner returns the comment line that opens every generated stylesheet.
func Banner(source string) string {
	return fmt.Sprintf("/* Auto-generated from %s. Do not edit by hand. */\n", source)
}
