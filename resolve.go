package ubidi

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/text/unicode/bidi"
)

// Resolving embedding levels (UAX#9 section 3.3) is organized as a sequence
// of passes over per-character arrays:
//
//    P2–P3   paragraph embedding level
//    X1–X8   explicit embeddings and overrides (directional status stack)
//    X5a–X6a isolate initiators and PDI
//    X9      remove embedding codes and BN from further processing
//    X10     cut the text into level runs, with sor/eor boundary classes
//    W1–W7   resolve weak types, per level run
//    N1–N2   resolve neutral types, per level run
//    I1–I2   resolve implicit levels
//    L1      reset separators and trailing whitespace
//
// The scratch type holds all working arrays for one resolution. Characters
// removed by X9 stay in place (the resolved level array must cover every
// input character); they are skipped via an index list and afterwards
// inherit the level of their preceding character.

type scratch struct {
	types      []bidi.Class // working classes, mutated by the W/N rules
	classes    []bidi.Class // original classes, needed by rule L1
	levels     []Level      // per-character embedding levels
	removed    []bool       // character is ignored per rule X9
	overridden []bool       // level was forced by a caller-supplied entry
	ord        []int        // indices of characters surviving X9
	runs       []levelRun
}

// A levelRun is a maximal sequence of (X9-surviving) characters with a
// constant explicit level, together with its start-of-run and end-of-run
// classes (rule X10). first and last index into scratch.ord, last exclusive.
type levelRun struct {
	first, last int
	level       Level
	sor, eor    bidi.Class // either bidi.L or bidi.R
}

func (s *scratch) prepare(n int) {
	if cap(s.types) < n {
		s.types = make([]bidi.Class, n)
		s.classes = make([]bidi.Class, n)
		s.levels = make([]Level, n)
		s.removed = make([]bool, n)
		s.overridden = make([]bool, n)
		s.ord = make([]int, 0, n)
	}
	s.types = s.types[:n]
	s.classes = s.classes[:n]
	s.levels = s.levels[:n]
	s.removed = s.removed[:n]
	s.overridden = s.overridden[:n]
	s.ord = s.ord[:0]
	s.runs = s.runs[:0]
	for i := 0; i < n; i++ {
		s.removed[i] = false
		s.overridden[i] = false
	}
}

// resolveParagraph runs all resolution passes and returns the resolved
// levels (a freshly allocated array, owned by the caller) together with the
// actual paragraph level.
func resolveParagraph(text []rune, paraLevel Level, embeddingLevels []Level,
	classify Classifier) ([]Level, Level, error) {
	//
	s := borrowScratch()
	defer releaseScratch(s)
	s.prepare(len(text))
	for i, r := range text {
		s.classes[i] = classify(r)
		s.types[i] = s.classes[i]
	}
	switch paraLevel {
	case LevelDefaultLTR:
		paraLevel = baseLevel(s.classes, 0)
	case LevelDefaultRTL:
		paraLevel = baseLevel(s.classes, 1)
	}
	T().Debugf("UAX#9 paragraph level = %d", paraLevel)
	s.resolveExplicit(paraLevel)
	if embeddingLevels != nil {
		s.applyEmbeddingLevels(embeddingLevels)
	}
	s.cutLevelRuns(paraLevel)
	for _, run := range s.runs {
		s.resolveWeak(run)
		s.resolveNeutral(run)
	}
	s.resolveImplicit()
	if err := s.checkResolved(); err != nil {
		return nil, 0, err
	}
	s.fillRemoved(paraLevel)
	s.resetSeparators(paraLevel)
	levels := make([]Level, len(text))
	copy(levels, s.levels)
	return levels, paraLevel, nil
}

// baseLevel finds the paragraph embedding level from the first strong
// character, as by rules P2 and P3. Characters between an isolate initiator
// and its matching PDI are skipped.
func baseLevel(classes []bidi.Class, fallback Level) Level {
	for i := 0; i < len(classes); i++ {
		switch c := classes[i]; c {
		case bidi.L:
			return 0
		case bidi.R, bidi.AL:
			return 1
		case bidi.LRI, bidi.RLI, bidi.FSI:
			i = matchingPDI(classes, i)
		}
	}
	return fallback
}

// matchingPDI returns the index of the PDI matching the isolate initiator at
// position i, or len(classes)-1 if there is none (rule BD9).
func matchingPDI(classes []bidi.Class, i int) int {
	depth := 0
	for j := i + 1; j < len(classes); j++ {
		switch classes[j] {
		case bidi.LRI, bidi.RLI, bidi.FSI:
			depth++
		case bidi.PDI:
			if depth == 0 {
				return j
			}
			depth--
		}
	}
	return len(classes) - 1
}

// firstStrongBetween determines the direction of an FSI by scanning for the
// first strong class before the matching PDI (rule X5c together with P2/P3).
func firstStrongBetween(classes []bidi.Class, i int) bidi.Class {
	limit := matchingPDI(classes, i)
	for j := i + 1; j <= limit && j < len(classes); j++ {
		switch c := classes[j]; c {
		case bidi.L:
			return bidi.LRI
		case bidi.R, bidi.AL:
			return bidi.RLI
		case bidi.LRI, bidi.RLI, bidi.FSI:
			j = matchingPDI(classes, j)
		}
	}
	return bidi.LRI
}

// A status entry is one level of the directional status stack of rule X1:
// an embedding level, a directional override (bidi.ON for none) and an
// isolate flag.
type statusEntry struct {
	level    Level
	override bidi.Class
	isolate  bool
}

// resolveExplicit performs rules X1 through X9: embedding codes
// (RLE/LRE/RLO/LRO/PDF), isolates (LRI/RLI/FSI/PDI) and overrides are
// processed with a directional status stack, giving every character a
// provisional embedding level. Overflows beyond MaxExplicitLevel are counted
// and ignored, as the standard demands, without raising errors.
func (s *scratch) resolveExplicit(paraLevel Level) {
	stack := arraystack.New()
	stack.Push(statusEntry{level: paraLevel, override: bidi.ON})
	overflowIsolate, overflowEmbedding, validIsolate := 0, 0, 0
	top := func() statusEntry {
		e, ok := stack.Peek()
		if !ok {
			return statusEntry{level: paraLevel, override: bidi.ON}
		}
		return e.(statusEntry)
	}
	for i := 0; i < len(s.classes); i++ {
		clz := s.classes[i]
		switch clz {
		case bidi.RLE, bidi.LRE, bidi.RLO, bidi.LRO: // X2–X5
			s.levels[i] = top().level
			s.removed[i] = true
			var newLevel Level
			override := bidi.ON
			switch clz {
			case bidi.RLE:
				newLevel = top().level.nextOdd()
			case bidi.LRE:
				newLevel = top().level.nextEven()
			case bidi.RLO:
				newLevel, override = top().level.nextOdd(), bidi.R
			case bidi.LRO:
				newLevel, override = top().level.nextEven(), bidi.L
			}
			if newLevel <= MaxExplicitLevel && overflowIsolate == 0 && overflowEmbedding == 0 {
				stack.Push(statusEntry{level: newLevel, override: override})
			} else if overflowIsolate == 0 {
				overflowEmbedding++
			}
		case bidi.LRI, bidi.RLI, bidi.FSI: // X5a–X5c
			eff := clz
			if clz == bidi.FSI {
				eff = firstStrongBetween(s.classes, i)
			}
			s.levels[i] = top().level
			if ov := top().override; ov != bidi.ON {
				s.types[i] = ov
			}
			var newLevel Level
			if eff == bidi.RLI {
				newLevel = top().level.nextOdd()
			} else {
				newLevel = top().level.nextEven()
			}
			if newLevel <= MaxExplicitLevel && overflowIsolate == 0 && overflowEmbedding == 0 {
				validIsolate++
				stack.Push(statusEntry{level: newLevel, override: bidi.ON, isolate: true})
			} else {
				overflowIsolate++
			}
			s.ord = append(s.ord, i)
		case bidi.PDI: // X6a
			if overflowIsolate > 0 {
				overflowIsolate--
			} else if validIsolate > 0 {
				overflowEmbedding = 0
				for {
					e, ok := stack.Pop()
					if !ok || e.(statusEntry).isolate {
						break
					}
				}
				validIsolate--
			}
			s.levels[i] = top().level
			if ov := top().override; ov != bidi.ON {
				s.types[i] = ov
			}
			s.ord = append(s.ord, i)
		case bidi.PDF: // X7
			s.levels[i] = top().level
			s.removed[i] = true
			if overflowIsolate > 0 {
				// within an overflow isolate, PDF has no effect
			} else if overflowEmbedding > 0 {
				overflowEmbedding--
			} else if !top().isolate && stack.Size() > 1 {
				stack.Pop()
			}
		case bidi.B: // X8
			s.levels[i] = paraLevel
			stack.Clear()
			stack.Push(statusEntry{level: paraLevel, override: bidi.ON})
			overflowIsolate, overflowEmbedding, validIsolate = 0, 0, 0
			s.ord = append(s.ord, i)
		case bidi.BN:
			s.levels[i] = top().level
			s.removed[i] = true
		default: // X6
			s.levels[i] = top().level
			if ov := top().override; ov != bidi.ON {
				s.types[i] = ov
			}
			s.ord = append(s.ord, i)
		}
	}
}

// applyEmbeddingLevels overlays caller-supplied explicit levels onto the
// provisional levels from the explicit pass. A zero entry leaves the
// character to normal resolution; a non-zero entry (flag bit stripped)
// replaces the provisional level, and the flag bit additionally forces the
// character's class to the direction given by the level's parity.
// Validation of the entries has happened in SetParagraph.
func (s *scratch) applyEmbeddingLevels(embeddingLevels []Level) {
	for i, e := range embeddingLevels {
		lvl := e &^ LevelOverride
		if lvl == 0 {
			continue
		}
		s.levels[i] = lvl
		if e&LevelOverride != 0 {
			s.overridden[i] = true
			if lvl.odd() {
				s.types[i] = bidi.R
			} else {
				s.types[i] = bidi.L
			}
		}
	}
}

// cutLevelRuns performs rule X10: it partitions the X9-surviving characters
// into maximal runs of constant embedding level and attaches the boundary
// classes sor and eor. A boundary class is L or R according to the higher of
// the two levels meeting at the boundary (the paragraph level at the outer
// edges).
func (s *scratch) cutLevelRuns(paraLevel Level) {
	if len(s.ord) == 0 {
		return
	}
	boundary := func(a, b Level) bidi.Class {
		m := a
		if b > m {
			m = b
		}
		if m.odd() {
			return bidi.R
		}
		return bidi.L
	}
	first := 0
	prevLevel := paraLevel
	runLevel := s.levels[s.ord[0]]
	for k := 1; k <= len(s.ord); k++ {
		if k < len(s.ord) && s.levels[s.ord[k]] == runLevel {
			continue
		}
		run := levelRun{
			first: first,
			last:  k,
			level: runLevel,
			sor:   boundary(prevLevel, runLevel),
		}
		if k < len(s.ord) {
			run.eor = boundary(runLevel, s.levels[s.ord[k]])
		} else {
			run.eor = boundary(runLevel, paraLevel)
		}
		s.runs = append(s.runs, run)
		if k < len(s.ord) {
			prevLevel = runLevel
			runLevel = s.levels[s.ord[k]]
			first = k
		}
	}
	T().Debugf("UAX#9 X10 cut %d level run(s)", len(s.runs))
}

// resolveWeak applies rules W1 through W7 to a single level run.
func (s *scratch) resolveWeak(run levelRun) {
	// W1: non-spacing marks take the class of the preceding character, or
	// sor at the start of the run. An NSM following an isolate initiator or
	// PDI becomes ON.
	prev := run.sor
	for k := run.first; k < run.last; k++ {
		i := s.ord[k]
		if s.types[i] == bidi.NSM {
			if isIsolate(prev) {
				s.types[i] = bidi.ON
			} else {
				s.types[i] = prev
			}
		}
		prev = s.types[i]
	}
	// W2: a European number becomes Arabic if the last strong class before
	// it is AL. W3: all AL become R.
	strong := run.sor
	for k := run.first; k < run.last; k++ {
		i := s.ord[k]
		switch s.types[i] {
		case bidi.EN:
			if strong == bidi.AL {
				s.types[i] = bidi.AN
			}
		case bidi.L, bidi.R, bidi.AL:
			strong = s.types[i]
		}
	}
	for k := run.first; k < run.last; k++ {
		if i := s.ord[k]; s.types[i] == bidi.AL {
			s.types[i] = bidi.R
		}
	}
	// W4: a single ES between European numbers becomes EN; a single CS
	// between two numbers of the same kind becomes that kind.
	for k := run.first + 1; k < run.last-1; k++ {
		i := s.ord[k]
		before, after := s.types[s.ord[k-1]], s.types[s.ord[k+1]]
		if s.types[i] == bidi.ES && before == bidi.EN && after == bidi.EN {
			s.types[i] = bidi.EN
		}
		if s.types[i] == bidi.CS && before == after &&
			(before == bidi.EN || before == bidi.AN) {
			s.types[i] = before
		}
	}
	// W5: sequences of ET adjacent to EN become EN.
	for k := run.first; k < run.last; k++ {
		if s.types[s.ord[k]] != bidi.EN {
			continue
		}
		for et := k - 1; et >= run.first && s.types[s.ord[et]] == bidi.ET; et-- {
			s.types[s.ord[et]] = bidi.EN
		}
		for et := k + 1; et < run.last && s.types[s.ord[et]] == bidi.ET; et++ {
			s.types[s.ord[et]] = bidi.EN
		}
	}
	// W6: leftover separators and terminators become neutral.
	for k := run.first; k < run.last; k++ {
		i := s.ord[k]
		switch s.types[i] {
		case bidi.ET, bidi.ES, bidi.CS:
			s.types[i] = bidi.ON
		}
	}
	// W7: a European number becomes L if the last strong class before it
	// is L.
	strong = run.sor
	for k := run.first; k < run.last; k++ {
		i := s.ord[k]
		switch s.types[i] {
		case bidi.EN:
			if strong == bidi.L {
				s.types[i] = bidi.L
			}
		case bidi.L, bidi.R:
			strong = s.types[i]
		}
	}
}

// resolveNeutral applies rules N1 and N2 to a single level run: a sequence
// of neutrals (including isolate initiators and PDI) takes the direction of
// its surrounding strong text if both sides agree, the embedding direction
// otherwise. European and Arabic numbers act as R for this purpose.
func (s *scratch) resolveNeutral(run levelRun) {
	strongify := func(clz bidi.Class) bidi.Class {
		switch clz {
		case bidi.EN, bidi.AN:
			return bidi.R
		}
		return clz
	}
	embedding := bidi.L
	if run.level.odd() {
		embedding = bidi.R
	}
	seqStart := -1
	before := run.sor
	for k := run.first; k <= run.last; k++ {
		clz := run.eor
		if k < run.last {
			clz = s.types[s.ord[k]]
		}
		if k < run.last && isNeutralOrIsolate(clz) {
			if seqStart < 0 {
				seqStart = k
			}
			continue
		}
		if seqStart >= 0 {
			after := strongify(clz)
			resolved := embedding
			if before == after {
				resolved = before
			}
			for n := seqStart; n < k; n++ {
				s.types[s.ord[n]] = resolved
			}
			seqStart = -1
		}
		before = strongify(clz)
	}
}

// resolveImplicit applies rules I1 and I2, bumping levels of R runs and
// numbers according to the embedding direction. Characters whose level was
// forced by a caller-supplied override entry keep their exact level.
func (s *scratch) resolveImplicit() {
	for _, i := range s.ord {
		if s.overridden[i] {
			continue
		}
		if s.levels[i].odd() { // I2
			switch s.types[i] {
			case bidi.L, bidi.EN, bidi.AN:
				s.levels[i]++
			}
		} else { // I1
			switch s.types[i] {
			case bidi.R:
				s.levels[i]++
			case bidi.EN, bidi.AN:
				s.levels[i] += 2
			}
		}
	}
}

// checkResolved verifies the invariant that the N rules have left only
// strong classes and numbers behind.
func (s *scratch) checkResolved() error {
	for _, i := range s.ord {
		switch s.types[i] {
		case bidi.L, bidi.R, bidi.EN, bidi.AN:
		default:
			return fmt.Errorf("%w: class %s survived neutral resolution",
				ErrInternal, ClassString(s.types[i]))
		}
	}
	return nil
}

// fillRemoved gives characters removed by X9 the level of their preceding
// character, or the paragraph level at the front of the text. This keeps
// them from splitting their surrounding run.
func (s *scratch) fillRemoved(paraLevel Level) {
	prev := paraLevel
	for i := range s.levels {
		if s.removed[i] {
			s.levels[i] = prev
		} else {
			prev = s.levels[i]
		}
	}
}

// resetSeparators applies rule L1: segment and paragraph separators, and any
// sequence of whitespace, isolate formatting or X9-removed characters
// preceding them or ending the text, return to the paragraph level.
func (s *scratch) resetSeparators(paraLevel Level) {
	reset := true
	for i := len(s.classes) - 1; i >= 0; i-- {
		if s.overridden[i] {
			reset = false
			continue
		}
		switch clz := s.classes[i]; {
		case clz == bidi.B || clz == bidi.S:
			s.levels[i] = paraLevel
			reset = true
		case reset && (clz == bidi.WS || isIsolate(clz) || isRemovedByX9(clz)):
			s.levels[i] = paraLevel
		default:
			reset = false
		}
	}
}
