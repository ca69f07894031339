// Package render holds the data types the viewport projection
// produces for a painter to consume, plus the column-sizing settings
// and the column-autocorrelation heuristic (LevenshteinColumns).
package render

// ByteData is one byte's worth of rendering information: the byte
// value (if present -- absent means a gap) and whether it falls inside
// the active search result for its pane.
type ByteData struct {
	Byte          byte
	Present       bool
	InSearchResult bool
}

// MaybeByte constructs a ByteData from an optional byte.
func MaybeByte(b byte, present bool, inSearchResult bool) ByteData {
	return ByteData{Byte: b, Present: present, InSearchResult: inSearchResult}
}

// BytePair is one column of a DoubleHexLine: the left and right
// ByteData for that cell (both are absent for a viewport cell outside
// the buffer's bounds).
type BytePair struct {
	Left, Right ByteData
}

// DoubleHexLine is one row of the viewport projection: the address of
// the row's first mapped cell on each side, and the per-column byte
// pairs.
type DoubleHexLine struct {
	LeftAddr, RightAddr   int
	HasLeftAddr, HasRightAddr bool
	Bytes                 []BytePair
}

// ColumnSetting is either a fixed column count or Auto, which asks an
// AutoColumns heuristic to pick one.
type ColumnSetting struct {
	Fixed int
	Auto  bool
}

// AutoColumns is the column-autocorrelation heuristic's signature.
// align.View.AutoColumn takes one as an argument; LevenshteinColumns
// in this package is the implementation the controller passes.
type AutoColumns func(left, right []byte) int
