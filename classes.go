package ubidi

import (
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

// A Classifier maps a code point to its UAX#9 bidi class. Classifiers have
// to be pure functions: no side effects, no failure mode. Code points not
// mapped by the underlying tables classify as bidi.ON (neutral).
//
// The default classifier consults the Unicode character database as compiled
// into golang.org/x/text/unicode/bidi.
type Classifier func(r rune) bidi.Class

func defaultClassifier(r rune) bidi.Class {
	props, _ := bidi.LookupRune(r)
	return props.Class()
}

// testingClassifier wraps a classifier to treat uppercase Latin letters as
// having class R. Tests of bidi behaviour become much more readable this way
// ("hello WORLD" instead of interspersed Hebrew or Arabic literals).
func testingClassifier(next Classifier) Classifier {
	return func(r rune) bidi.Class {
		if r < 0x80 && unicode.IsUpper(r) {
			return bidi.R
		}
		return next(r)
	}
}

// isStrong is true for the strong directional classes of rule P2.
func isStrong(clz bidi.Class) bool {
	return clz == bidi.L || clz == bidi.R || clz == bidi.AL
}

// isRemovedByX9 is true for classes rule X9 removes from further processing:
// explicit embedding/override codes and boundary-neutral characters.
func isRemovedByX9(clz bidi.Class) bool {
	switch clz {
	case bidi.RLE, bidi.LRE, bidi.RLO, bidi.LRO, bidi.PDF, bidi.BN:
		return true
	}
	return false
}

// isIsolate is true for isolate initiators and PDI. These survive X9 and act
// as neutral characters during weak- and neutral-type resolution.
func isIsolate(clz bidi.Class) bool {
	switch clz {
	case bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
		return true
	}
	return false
}

// isNeutralOrIsolate covers the NI classes of the N-rules.
func isNeutralOrIsolate(clz bidi.Class) bool {
	switch clz {
	case bidi.B, bidi.S, bidi.WS, bidi.ON:
		return true
	}
	return isIsolate(clz)
}

// ClassString returns a bidi class as a string.
func ClassString(clz bidi.Class) string {
	switch clz {
	case bidi.L:
		return "L"
	case bidi.R:
		return "R"
	case bidi.EN:
		return "EN"
	case bidi.ES:
		return "ES"
	case bidi.ET:
		return "ET"
	case bidi.AN:
		return "AN"
	case bidi.CS:
		return "CS"
	case bidi.B:
		return "B"
	case bidi.S:
		return "S"
	case bidi.WS:
		return "WS"
	case bidi.ON:
		return "ON"
	case bidi.BN:
		return "BN"
	case bidi.NSM:
		return "NSM"
	case bidi.AL:
		return "AL"
	case bidi.Control:
		return "Control"
	case bidi.LRO:
		return "LRO"
	case bidi.RLO:
		return "RLO"
	case bidi.LRE:
		return "LRE"
	case bidi.RLE:
		return "RLE"
	case bidi.PDF:
		return "PDF"
	case bidi.LRI:
		return "LRI"
	case bidi.RLI:
		return "RLI"
	case bidi.FSI:
		return "FSI"
	case bidi.PDI:
		return "PDI"
	}
	return "bidi_class(unknown)"
}
