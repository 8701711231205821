// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package spotless

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// Locate reports the line and column of the given byte offset in src.
// Offsets past the end of src are clamped to the end.
func Locate(src []byte, offset int) LineCol {
	in := mem.B(src)
	if offset > in.Len() {
		offset = in.Len()
	} else if offset < 0 {
		offset = 0
	}
	lc := LineCol{Line: 1}
	for {
		i := mem.IndexByte(in.SliceTo(offset), '\n')
		if i < 0 {
			break
		}
		lc.Line++
		in = in.SliceFrom(i + 1)
		offset -= i + 1
	}
	lc.Column = offset
	return lc
}
