package ubidi_test

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/ubidi"
)

// Rule-level checks of the resolver, driven through the public API. Each
// test isolates one of the weak, neutral, explicit or reset rules with a
// minimal input.

func TestWeakArabicNumbers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	para := ubidi.Open()
	defer para.Close()
	// digits after an Arabic letter turn Arabic (W2) and nest two levels
	// deep inside the LTR paragraph
	checkResolve(t, para, "س 123", 0)
	assertLevels(t, para, []ubidi.Level{1, 1, 2, 2, 2})
}

func TestWeakEuropeanSeparator(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	para := ubidi.Open()
	defer para.Close()
	// a single '+' between European digits joins them (W4), and the whole
	// number reads as L text (W7)
	checkResolve(t, para, "1+2", 0)
	assertLevels(t, para, []ubidi.Level{0, 0, 0})
	count, _ := para.CountRuns()
	if count != 1 {
		t.Errorf("Expected a single run, have %d", count)
	}
}

func TestWeakCurrencyTerminator(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	para := ubidi.Open()
	defer para.Close()
	// '$' adjacent to digits becomes part of the number (W5)
	checkResolve(t, para, "$10", 0)
	assertLevels(t, para, []ubidi.Level{0, 0, 0})
}

func TestNeutralsBetweenStrongTypes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	para := ubidi.Open(ubidi.Testing(true))
	defer para.Close()
	// both spaces take the direction of their RTL surroundings (N1), the
	// digits nest one level deeper (I2)
	checkResolve(t, para, "WORLD 123 WORLD", ubidi.LevelDefaultLTR)
	assertLevels(t, para, []ubidi.Level{
		1, 1, 1, 1, 1, 1, 2, 2, 2, 1, 1, 1, 1, 1, 1,
	})
	runs, err := para.Runs()
	if err != nil {
		t.Error(err)
	}
	if len(runs) != 3 || runs[1].Start != 6 || runs[1].Limit != 9 {
		t.Errorf("Expected the number as an inner run, have %v", runs)
	}
}

func TestExplicitEmbedding(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	para := ubidi.Open()
	defer para.Close()
	// RLE…PDF raises the enclosed text to level 1, where the LTR letters
	// settle on level 2; the removed codes inherit adjacent levels
	checkResolve(t, para, "he\u202bis\u202cok", 0)
	assertLevels(t, para, []ubidi.Level{0, 0, 0, 2, 2, 2, 0, 0})
	count, _ := para.CountRuns()
	if count != 3 {
		t.Errorf("Expected 3 runs, have %d", count)
	}
}

func TestExplicitOverride(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	para := ubidi.Open()
	defer para.Close()
	// RLO forces the enclosed LTR letters to read right-to-left
	checkResolve(t, para, "ab\u202ecd\u202cef", 0)
	assertLevels(t, para, []ubidi.Level{0, 0, 0, 1, 1, 1, 0, 0})
	dir, _ := para.Direction()
	if dir != ubidi.Mixed {
		t.Errorf("Expected mixed direction, have %s", dir)
	}
}

func TestIsolates(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	para := ubidi.Open()
	defer para.Close()
	// RLI…PDI isolates its content on a higher level; the isolate
	// formatting characters themselves stay neutral on the outer level
	checkResolve(t, para, "a\u2067b\u2069c", 0)
	assertLevels(t, para, []ubidi.Level{0, 0, 2, 0, 0})
	count, _ := para.CountRuns()
	if count != 3 {
		t.Errorf("Expected 3 runs, have %d", count)
	}
}

func TestTrailingWhitespaceReset(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	para := ubidi.Open()
	defer para.Close()
	// trailing whitespace returns to the paragraph level (L1)
	checkResolve(t, para, "abc  ", 1)
	assertLevels(t, para, []ubidi.Level{2, 2, 2, 1, 1})
}

func TestSegmentSeparatorReset(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	para := ubidi.Open()
	defer para.Close()
	// a tab resets to the paragraph level even mid-text (L1)
	checkResolve(t, para, "abc\tdef", 1)
	assertLevels(t, para, []ubidi.Level{2, 2, 2, 1, 2, 2, 2})
}

func TestEmbeddingOverflow(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	para := ubidi.Open()
	defer para.Close()
	// 70 nested RLEs exceed MaxExplicitLevel; overflowing codes and their
	// PDFs must be ignored without disturbing the text
	text := make([]rune, 0, 141)
	for i := 0; i < 70; i++ {
		text = append(text, '\u202b')
	}
	text = append(text, 'a')
	for i := 0; i < 70; i++ {
		text = append(text, '\u202c')
	}
	checkResolve(t, para, string(text), 0)
	levels, err := para.Levels()
	if err != nil {
		t.Fatal(err)
	}
	// the letter sits at explicit level 125; being L on an odd level it is
	// bumped once more by I2
	if levels[70] != 126 {
		t.Errorf("Expected the letter at level 126, have %d", levels[70])
	}
}
