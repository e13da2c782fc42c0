package ubidi

import "fmt"

// A Run is a maximal contiguous span of characters sharing one embedding
// level. Start and Limit are logical character indices, Limit not included.
type Run struct {
	Start, Limit int
	Level        Level
}

// Dir returns the direction of a run, derived from the parity of its level.
func (r Run) Dir() Direction {
	if r.Level.odd() {
		return RightToLeft
	}
	return LeftToRight
}

func (r Run) String() string {
	return fmt.Sprintf("[%d-%s-%d]", r.Start, r.Dir(), r.Limit)
}

// CountRuns returns the number of directional runs of the analyzed text.
// An empty analysis has zero runs.
func (b *Bidi) CountRuns() (int, error) {
	if err := b.accessible(); err != nil {
		return 0, err
	}
	count := 0
	var prev Level
	for i, l := range b.levels {
		if i == 0 || l != prev {
			count++
		}
		prev = l
	}
	return count, nil
}

// Runs returns the directional runs of the analyzed text in logical order.
// Runs partition the text: they are contiguous, non-overlapping, ordered by
// Start, and no two adjacent runs share a level.
func (b *Bidi) Runs() ([]Run, error) {
	if err := b.accessible(); err != nil {
		return nil, err
	}
	if b.length == 0 {
		return []Run{}, nil
	}
	runs := make([]Run, 0, 8)
	start := 0
	level := b.levels[0]
	for i := 1; i <= b.length; i++ {
		if i < b.length && b.levels[i] == level {
			continue
		}
		runs = append(runs, Run{Start: start, Limit: i, Level: level})
		if i < b.length {
			start = i
			level = b.levels[i]
		}
	}
	return runs, nil
}

// VisualRuns returns the directional runs permuted into visual left-to-right
// display order, i.e. the order in which a renderer would place them.
func (b *Bidi) VisualRuns() ([]Run, error) {
	runs, err := b.Runs()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return runs, nil
	}
	runLevels := make([]Level, len(runs))
	for i, run := range runs {
		runLevels[i] = run.Level
	}
	perm, err := ReorderVisual(runLevels, len(runLevels))
	if err != nil {
		return nil, err
	}
	visual := make([]Run, len(runs))
	for pos, idx := range perm {
		visual[pos] = runs[idx]
	}
	return visual, nil
}
