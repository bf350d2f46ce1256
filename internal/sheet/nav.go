package sheet

// Dir is a navigation direction.
type Dir int

const (
	Up Dir = iota
	Down
	Left
	Right
)

// Move returns ref shifted one step in dir, clamped to the table bounds
// (no wrapping; moving past an edge holds position on that axis).
// On a table with zero rows or zero columns the clamp target is -1;
// callers must treat negative components as "no valid position".
func Move(d Dir, ref Ref, t Table) Ref {
	rows, cols := t.Size()
	switch d {
	case Up:
		ref.Row--
	case Down:
		ref.Row++
	case Left:
		ref.Col--
	case Right:
		ref.Col++
	}
	ref.Row = clamp(ref.Row, 0, rows-1)
	ref.Col = clamp(ref.Col, 0, cols-1)
	return ref
}

func clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
