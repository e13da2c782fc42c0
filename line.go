package ubidi

import "fmt"

// SetLine derives the analysis of a sub-range [start, limit) of a resolved
// paragraph, typically one line after line breaking. The returned handle is
// independent of its parent: it owns a copy of the relevant level data, is
// already resolved, and must be closed separately. The parent is only read.
//
// Resolved levels are taken over as-is; run boundaries within the line are
// re-derived by the run extractor's maximal-run merging. The line inherits
// the parent's paragraph level, so reordering it behaves as if it were an
// independent paragraph.
//
// Deriving multiple lines concurrently from one resolved parent is safe.
func (b *Bidi) SetLine(start, limit int) (*Bidi, error) {
	if err := b.accessible(); err != nil {
		return nil, err
	}
	if start < 0 || start >= limit || limit > b.length {
		return nil, fmt.Errorf("%w: line [%d, %d) not within paragraph of length %d",
			ErrInvalidArgument, start, limit, b.length)
	}
	line := &Bidi{
		mode:       b.mode,
		classifier: b.classifier,
		length:     limit - start,
		paraLevel:  b.paraLevel,
		levels:     make([]Level, limit-start),
		resolved:   true,
	}
	copy(line.levels, b.levels[start:limit])
	line.direction = directionFromLevels(line.levels, line.paraLevel)
	return line, nil
}
