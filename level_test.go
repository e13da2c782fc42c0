package ubidi

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"golang.org/x/text/unicode/bidi"
)

func TestLevelSuccessors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cases := []struct {
		level    Level
		odd, evn Level
	}{
		{0, 1, 2},
		{1, 3, 2},
		{2, 3, 4},
		{123, 125, 124},
	}
	for _, c := range cases {
		if have := c.level.nextOdd(); have != c.odd {
			t.Errorf("nextOdd(%d) = %d, expected %d", c.level, have, c.odd)
		}
		if have := c.level.nextEven(); have != c.evn {
			t.Errorf("nextEven(%d) = %d, expected %d", c.level, have, c.evn)
		}
	}
}

func TestDirectionBaseLevels(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if LeftToRight.Level() != 0 || RightToLeft.Level() != 1 {
		t.Errorf("Unexpected base levels %d / %d", LeftToRight.Level(), RightToLeft.Level())
	}
	if Mixed.Level() != LevelDefaultLTR {
		t.Errorf("Expected Mixed to request auto-detection, have %d", Mixed.Level())
	}
}

func TestDirectionFromLevels(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if dir := directionFromLevels([]Level{0, 2, 4}, 0); dir != LeftToRight {
		t.Errorf("Expected L2R for even levels, have %s", dir)
	}
	if dir := directionFromLevels([]Level{1, 3}, 0); dir != RightToLeft {
		t.Errorf("Expected R2L for odd levels, have %s", dir)
	}
	if dir := directionFromLevels([]Level{0, 1}, 0); dir != Mixed {
		t.Errorf("Expected mixed direction, have %s", dir)
	}
	if dir := directionFromLevels(nil, 1); dir != RightToLeft {
		t.Errorf("Empty analysis must inherit the paragraph level, have %s", dir)
	}
}

func TestClassifiers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if clz := defaultClassifier('א'); clz != bidi.R {
		t.Errorf("Expected א to classify as R, have %s", ClassString(clz))
	}
	if clz := defaultClassifier('a'); clz != bidi.L {
		t.Errorf("Expected a to classify as L, have %s", ClassString(clz))
	}
	forTests := testingClassifier(defaultClassifier)
	if clz := forTests('A'); clz != bidi.R {
		t.Errorf("Expected A to classify as R in test mode, have %s", ClassString(clz))
	}
	if clz := forTests('a'); clz != bidi.L {
		t.Errorf("Expected a to classify as L in test mode, have %s", ClassString(clz))
	}
}

func TestScratchPoolReuse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	s := borrowScratch()
	s.prepare(8)
	s.removed[3] = true
	releaseScratch(s)
	s = borrowScratch()
	defer releaseScratch(s)
	s.prepare(8)
	for i, r := range s.removed {
		if r {
			t.Errorf("Pooled scratch not reset, removed[%d] still set", i)
		}
	}
}
