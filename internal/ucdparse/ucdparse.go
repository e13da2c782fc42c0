/*
Package ucdparse parses Unicode Character Database test files for UAX#9,
i.e. BidiTest.txt and BidiCharacterTest.txt. It is used by conformance
tests only.

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
*/
package ucdparse

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// A BidiTestCase is one record of BidiCharacterTest.txt. Fields follow the
// file format documented in its header:
//
//    codepoints ; paragraph direction ; paragraph level ; levels ; visual order
//
// where paragraph direction is 0 (LTR), 1 (RTL) or 2 (auto), levels holds
// one decimal level per character with 'x' for characters removed from
// display, and the visual order lists the logical indices of the characters
// left after removal, in display order.
type BidiTestCase struct {
	Text      []rune
	ParaDir   int
	ParaLevel int
	Levels    []int // -1 for 'x'
	Visual    []int
}

// ParseBidiTestCase parses one (comment-stripped) line of
// BidiCharacterTest.txt.
func ParseBidiTestCase(line string) (BidiTestCase, error) {
	tc := BidiTestCase{}
	fields := strings.Split(line, ";")
	if len(fields) < 5 {
		return tc, fmt.Errorf("ucdparse: expected 5 fields, have %d", len(fields))
	}
	tc.Text = parseHexRunes(fields[0])
	var err error
	if tc.ParaDir, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return tc, fmt.Errorf("ucdparse: paragraph direction: %w", err)
	}
	if tc.ParaLevel, err = strconv.Atoi(strings.TrimSpace(fields[2])); err != nil {
		return tc, fmt.Errorf("ucdparse: paragraph level: %w", err)
	}
	tc.Levels = parseLevels(fields[3])
	tc.Visual = parseInts(fields[4])
	if len(tc.Levels) != len(tc.Text) {
		return tc, fmt.Errorf("ucdparse: %d levels for %d characters",
			len(tc.Levels), len(tc.Text))
	}
	return tc, nil
}

func parseHexRunes(inp string) []rune {
	sc := bufio.NewScanner(strings.NewReader(inp))
	sc.Split(bufio.ScanWords)
	runes := make([]rune, 0, len(inp)/5+1)
	for sc.Scan() {
		n, _ := strconv.ParseUint(sc.Text(), 16, 32)
		runes = append(runes, rune(n))
	}
	return runes
}

func parseLevels(inp string) []int {
	sc := bufio.NewScanner(strings.NewReader(inp))
	sc.Split(bufio.ScanWords)
	levels := make([]int, 0, len(inp)/2+1)
	for sc.Scan() {
		token := sc.Text()
		if token == "x" {
			levels = append(levels, -1)
			continue
		}
		n, _ := strconv.ParseInt(token, 10, 32)
		levels = append(levels, int(n))
	}
	return levels
}

func parseInts(inp string) []int {
	sc := bufio.NewScanner(strings.NewReader(inp))
	sc.Split(bufio.ScanWords)
	ints := make([]int, 0, len(inp)/2+1)
	for sc.Scan() {
		n, _ := strconv.ParseInt(sc.Text(), 10, 32)
		ints = append(ints, int(n))
	}
	return ints
}
