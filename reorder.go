package ubidi

import "fmt"

// ReorderVisual maps an array of resolved embedding levels to the visual
// ordering of its positions (UAX#9 rule L2): from the highest level present
// down to the lowest odd level, every maximal contiguous sequence of
// positions at that level or higher is reversed. The result is a
// permutation: index i holds the logical position of the character to be
// displayed at visual position i.
//
// ReorderVisual is a pure function over the level array; it needs no Bidi
// handle and no classification. Identical inputs yield identical
// permutations.
//
// length must equal len(levels); the redundant parameter guards callers
// which manage levels and counts separately.
func ReorderVisual(levels []Level, length int) ([]int, error) {
	if length < 0 || length != len(levels) {
		return nil, fmt.Errorf("%w: length %d does not match %d levels",
			ErrInvalidArgument, length, len(levels))
	}
	indexMap := make([]int, length)
	for i := range indexMap {
		indexMap[i] = i
	}
	if length == 0 {
		return indexMap, nil
	}
	highest := levels[0]
	lowestOdd := Level(0)
	for _, l := range levels {
		if l > highest {
			highest = l
		}
		if l.odd() && (lowestOdd == 0 || l < lowestOdd) {
			lowestOdd = l
		}
	}
	if lowestOdd == 0 { // no odd level anywhere: identity
		return indexMap, nil
	}
	for threshold := highest; threshold >= lowestOdd; threshold-- {
		start := -1
		for i := 0; i <= length; i++ {
			if i < length && levels[i] >= threshold {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				reverse(indexMap, start, i)
				start = -1
			}
		}
	}
	return indexMap, nil
}

// reverse the ordering of indexMap[i:j].
func reverse(indexMap []int, i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		indexMap[i], indexMap[j] = indexMap[j], indexMap[i]
	}
}

// InvertMap inverts an index permutation, turning a visual-to-logical map
// into a logical-to-visual one and vice versa. The argument is left
// untouched.
func InvertMap(indexMap []int) []int {
	inverse := make([]int, len(indexMap))
	for pos, idx := range indexMap {
		if idx >= 0 && idx < len(inverse) {
			inverse[idx] = pos
		}
	}
	return inverse
}
