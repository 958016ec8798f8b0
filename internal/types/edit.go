package types

// EditInfo describes which lines a buffer mutation touched, so line-keyed
// caches (tokens) can be shifted and refreshed without a full pass.
type EditInfo struct {
	StartLine  int // First line touched (1-based)
	OldEndLine int // Last touched line before the edit
	NewEndLine int // Last touched line after the edit
}

// LineDelta is the change in line count caused by the edit.
func (e EditInfo) LineDelta() int {
	return e.NewEndLine - e.OldEndLine
}

// IsZero reports whether e carries no edit.
func (e EditInfo) IsZero() bool {
	return e.StartLine == 0 && e.OldEndLine == 0 && e.NewEndLine == 0
}
