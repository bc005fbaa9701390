package landmark

import (
	"github.com/BrandonKowalski/landmarks/pkg/landmark/internal"
)

// NextLandmark returns the landmark that navigation in dir reaches from
// the element from.
//
// Navigation starts one step away from the landmark containing from, or at
// the first (last, going backward) landmark when from is outside every
// landmark. Running past either end fires the boundary event on from; if a
// handler cancels it there is no target, otherwise navigation wraps. Hidden
// landmarks are skipped, and there is no target when every landmark is
// hidden.
func (r *Registry) NextLandmark(from Element, dir Direction) (Landmark, bool) {
	if len(r.landmarks) == 0 {
		return Landmark{}, false
	}

	cursor := internal.NewCursor(r.closestIndex(from), len(r.landmarks), dir)
	if !r.wrapIfNeeded(&cursor, from) {
		return Landmark{}, false
	}

	start := cursor.Index
	for r.doc.IsHidden(r.landmarks[cursor.Index].Element) {
		cursor.Advance()
		if !r.wrapIfNeeded(&cursor, from) {
			return Landmark{}, false
		}
		if cursor.Index == start {
			r.logger.Debug("Every landmark is hidden", "count", len(r.landmarks))
			return Landmark{}, false
		}
	}

	return *r.landmarks[cursor.Index], true
}

// wrapIfNeeded wraps an overflowed cursor unless the boundary event is
// canceled. It returns false when navigation must stop.
func (r *Registry) wrapIfNeeded(cursor *internal.Cursor, from Element) bool {
	if !cursor.Overflowed() {
		return true
	}

	r.stats.wraps.Inc()
	if !r.doc.DispatchBoundary(from, cursor.Direction) {
		r.logger.Debug("Landmark navigation boundary canceled", "direction", cursor.Direction.String())
		return false
	}

	cursor.Wrap()
	return cursor.Valid()
}
