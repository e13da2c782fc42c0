/*
Package ubidi implements the Unicode Bidirectional Algorithm (UAX#9),
i.e. resolving embedding levels for paragraphs of text which possibly mix
left-to-right and right-to-left scripts, and reordering the resulting
directional runs for display.

Under active development; use at your own risk

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Contents

UAX#9 lists the following phases for bidi typesetting:

   3.3  Resolving Embedding Levels
   3.4  Reordering Resolved Levels
   3.5  Shaping

This package covers phases 3.3 and 3.4. Shaping is out of scope, as are
glyph mirroring and line breaking. Classification of characters into bidi
classes is delegated to golang.org/x/text/unicode/bidi.

Typical Usage

Clients open a Bidi handle, feed it a paragraph of text and then query
resolved levels and directional runs.

  para := ubidi.Open()
  defer para.Close()
  if err := para.SetParagraph([]rune(input), ubidi.LevelDefaultLTR, nil); err != nil {
     ... // invalid input
  }
  runs, _ := para.Runs()
  for _, run := range runs {
     ... // do something with input[run.Start:run.Limit]
  }

After line breaking, sub-ranges of the paragraph are re-analyzed without
re-running classification:

  line, err := para.SetLine(start, limit)

Reordering resolved levels into visual order is a pure function and needs
no handle:

  visual, err := ubidi.ReorderVisual(levels, len(levels))
*/
package ubidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// UnicodeVersion is the UAX#9 version this implementation follows.
const UnicodeVersion = "13.0.0"
