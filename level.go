package ubidi

// Level is an embedding level as defined by UAX#9: the depth of directional
// nesting for a single character. Even levels denote a left-to-right context,
// odd levels a right-to-left context.
type Level uint8

// Levels 0…MaxExplicitLevel are legal embedding levels. The two topmost byte
// values are reserved as sentinels for paragraph-level auto-detection, with
// differing fallback if no strong character is found. Value layout follows
// ICU's ubidi conventions, which callers of the original binding rely on.
const (
	// MaxExplicitLevel is the deepest legal explicit embedding (UAX#9 section 3.3.2).
	MaxExplicitLevel Level = 125

	// LevelOverride is a flag bit for entries of a caller-supplied embedding
	// level array: the character's level is an explicit override rather than
	// input to resolution. The engine strips the flag internally.
	LevelOverride Level = 0x80

	// LevelDefaultLTR requests auto-detection of the paragraph level from the
	// first strong character, defaulting to 0 (LTR).
	LevelDefaultLTR Level = 0xfe

	// LevelDefaultRTL requests auto-detection of the paragraph level from the
	// first strong character, defaulting to 1 (RTL).
	LevelDefaultRTL Level = 0xff
)

// odd is true for levels within a right-to-left context.
func (l Level) odd() bool {
	return l&1 == 1
}

// nextOdd returns the least odd level greater than l (UAX#9 "least greater odd").
func (l Level) nextOdd() Level {
	return (l + 1) | 1
}

// nextEven returns the least even level greater than l.
func (l Level) nextEven() Level {
	return (l + 2) &^ 1
}

// Direction classifies resolved text as uniformly left-to-right, uniformly
// right-to-left, or mixed.
type Direction int8

// Directions of text.
const (
	LeftToRight Direction = iota
	RightToLeft
	Mixed
)

func (dir Direction) String() string {
	switch dir {
	case LeftToRight:
		return "L2R"
	case RightToLeft:
		return "R2L"
	case Mixed:
		return "mixed"
	}
	return "direction?"
}

// Level returns the base embedding level corresponding to a uniform
// direction: 0 for LeftToRight, 1 for RightToLeft. For Mixed it returns
// LevelDefaultLTR, i.e. auto-detection.
func (dir Direction) Level() Level {
	switch dir {
	case LeftToRight:
		return 0
	case RightToLeft:
		return 1
	}
	return LevelDefaultLTR
}

// directionFromLevels derives the overall direction of a resolved analysis.
// An empty analysis inherits the parity of the paragraph level.
func directionFromLevels(levels []Level, paraLevel Level) Direction {
	if len(levels) == 0 {
		if paraLevel.odd() {
			return RightToLeft
		}
		return LeftToRight
	}
	allEven, allOdd := true, true
	for _, l := range levels {
		if l.odd() {
			allEven = false
		} else {
			allOdd = false
		}
	}
	switch {
	case allEven:
		return LeftToRight
	case allOdd:
		return RightToLeft
	}
	return Mixed
}
