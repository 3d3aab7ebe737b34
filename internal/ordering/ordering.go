// Package ordering implements array-move reordering of the selection display
// sequence.
package ordering

func indexOf[T any](seq []T, id func(T) string, want string) int {
	for i, v := range seq {
		if id(v) == want {
			return i
		}
	}
	return -1
}

// MoveBefore removes the element identified by movedID and reinserts it at
// the index targetID occupied before the removal. Moving forward lands the
// element after the target; moving backward lands it before.
//
// When either id is missing or movedID == targetID the input slice itself is
// returned. The input is never modified.
func MoveBefore[T any](seq []T, id func(T) string, movedID, targetID string) []T {
	if movedID == targetID {
		return seq
	}
	from := indexOf(seq, id, movedID)
	to := indexOf(seq, id, targetID)
	if from < 0 || to < 0 {
		return seq
	}

	out := make([]T, 0, len(seq))
	moved := seq[from]
	for i, v := range seq {
		if i == from {
			continue
		}
		out = append(out, v)
	}
	out = append(out, moved) // grow by one; overwritten by the shift below
	copy(out[to+1:], out[to:len(out)-1])
	out[to] = moved
	return out
}

// MoveToEnd moves the element identified by movedID to the last position.
// Missing ids and elements already last return the input slice.
func MoveToEnd[T any](seq []T, id func(T) string, movedID string) []T {
	from := indexOf(seq, id, movedID)
	if from < 0 || from == len(seq)-1 {
		return seq
	}
	out := make([]T, 0, len(seq))
	out = append(out, seq[:from]...)
	out = append(out, seq[from+1:]...)
	return append(out, seq[from])
}

// Offset returns the id of the element delta positions away from movedID.
// ok is false when movedID is missing or the position falls outside seq.
func Offset[T any](seq []T, id func(T) string, movedID string, delta int) (targetID string, ok bool) {
	from := indexOf(seq, id, movedID)
	if from < 0 {
		return "", false
	}
	to := from + delta
	if to < 0 || to >= len(seq) {
		return "", false
	}
	return id(seq[to]), true
}

func identity(s string) string { return s }

// MoveSlugBefore is MoveBefore over plain slugs.
func MoveSlugBefore(slugs []string, moved, target string) []string {
	return MoveBefore(slugs, identity, moved, target)
}

// MoveUp moves movedID one slot toward the front.
func MoveUp[T any](seq []T, id func(T) string, movedID string) []T {
	target, ok := Offset(seq, id, movedID, -1)
	if !ok {
		return seq
	}
	return MoveBefore(seq, id, movedID, target)
}

// MoveDown moves movedID one slot toward the back. With array-move semantics
// the element takes its successor's slot.
func MoveDown[T any](seq []T, id func(T) string, movedID string) []T {
	target, ok := Offset(seq, id, movedID, 1)
	if !ok {
		return seq
	}
	return MoveBefore(seq, id, movedID, target)
}
