package ubidi

import (
	"fmt"
)

// maxParagraphLength bounds the size of a single paragraph. UAX#9 operates
// on paragraphs, not on complete texts; the engine's positional counters are
// sized accordingly.
const maxParagraphLength = 1 << 30

// A Bidi is a handle for the bidi analysis of one paragraph of text (or, via
// SetLine, of a sub-range of a paragraph). A freshly opened handle is empty;
// it becomes resolved by a successful call to SetParagraph. Once resolved,
// all accessors are read-only and safe for concurrent use. Close releases
// the handle; closing twice is an error.
//
// Bidi handles exclusively own their level buffers. Caller-supplied
// embedding level arrays are copied during SetParagraph and never aliased
// beyond the duration of the call.
type Bidi struct {
	mode       uint8
	classifier Classifier
	resolved   bool
	closed     bool
	length     int
	paraLevel  Level
	direction  Direction
	levels     []Level
}

// Open creates an empty, unresolved Bidi handle.
func Open(opts ...Option) *Bidi {
	b := &Bidi{classifier: defaultClassifier}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Close releases all buffers owned by the handle. It is safe to call exactly
// once per handle; a second call fails with ErrIllegalState.
func (b *Bidi) Close() error {
	if b == nil || b.closed {
		return fmt.Errorf("%w: handle already closed", ErrIllegalState)
	}
	b.closed = true
	b.resolved = false
	b.levels = nil
	b.length = 0
	return nil
}

// SetParagraph analyzes a paragraph of text, resolving an embedding level
// for every character.
//
// paraLevel is the base embedding level of the paragraph, 0…MaxExplicitLevel,
// or one of the sentinels LevelDefaultLTR/LevelDefaultRTL to auto-detect it
// from the first strong character.
//
// embeddingLevels may be nil. If present, it must hold one entry per
// character: 0 to resolve the character normally, or an explicit level
// 1…MaxExplicitLevel, optionally combined with the LevelOverride flag bit to
// force the character's direction to the level's parity. The array is copied;
// the engine keeps no reference to it.
//
// On failure the handle is left exactly as it was before the call.
func (b *Bidi) SetParagraph(text []rune, paraLevel Level, embeddingLevels []Level) error {
	if b == nil || b.closed {
		return fmt.Errorf("%w: handle is closed", ErrIllegalState)
	}
	if len(text) > maxParagraphLength {
		return fmt.Errorf("%w: %d characters", ErrTooLong, len(text))
	}
	if paraLevel > MaxExplicitLevel && paraLevel != LevelDefaultLTR && paraLevel != LevelDefaultRTL {
		return fmt.Errorf("%w: illegal paragraph level %d", ErrInvalidArgument, paraLevel)
	}
	if embeddingLevels != nil {
		if len(embeddingLevels) != len(text) {
			return fmt.Errorf("%w: have %d embedding levels for %d characters",
				ErrInvalidArgument, len(embeddingLevels), len(text))
		}
		for i, e := range embeddingLevels {
			if e&^LevelOverride > MaxExplicitLevel {
				return fmt.Errorf("%w: embedding level %d at position %d",
					ErrInvalidArgument, e&^LevelOverride, i)
			}
		}
	}
	classify := b.classifier
	if classify == nil {
		classify = defaultClassifier
	}
	if b.hasMode(optionTesting) {
		classify = testingClassifier(classify)
	}
	levels, level, err := resolveParagraph(text, paraLevel, embeddingLevels, classify)
	if err != nil {
		return err
	}
	b.levels = levels
	b.paraLevel = level
	b.length = len(text)
	b.direction = directionFromLevels(levels, level)
	b.resolved = true
	return nil
}

// accessible guards the read accessors.
func (b *Bidi) accessible() error {
	if b == nil || b.closed {
		return fmt.Errorf("%w: handle is closed", ErrIllegalState)
	}
	if !b.resolved {
		return fmt.Errorf("%w: no paragraph has been set", ErrIllegalState)
	}
	return nil
}

// Length returns the number of characters covered by the analysis.
func (b *Bidi) Length() (int, error) {
	if err := b.accessible(); err != nil {
		return 0, err
	}
	return b.length, nil
}

// ParaLevel returns the resolved base embedding level of the paragraph:
// either the level given to SetParagraph or the auto-detected one.
func (b *Bidi) ParaLevel() (Level, error) {
	if err := b.accessible(); err != nil {
		return 0, err
	}
	return b.paraLevel, nil
}

// Direction reports whether the analyzed text is uniformly left-to-right,
// uniformly right-to-left, or mixed.
func (b *Bidi) Direction() (Direction, error) {
	if err := b.accessible(); err != nil {
		return LeftToRight, err
	}
	return b.direction, nil
}

// Levels returns the resolved embedding level for every character, in
// logical order. The returned slice is a copy and owned by the caller.
func (b *Bidi) Levels() ([]Level, error) {
	if err := b.accessible(); err != nil {
		return nil, err
	}
	levels := make([]Level, b.length)
	copy(levels, b.levels)
	return levels, nil
}
