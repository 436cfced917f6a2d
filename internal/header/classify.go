package header

import "floatbar/internal/domain"

// Classify maps one (offset, delta, height) triple to an action. Branches
// are evaluated in precedence order; the first match wins:
//
//  1. offset inside (-height, 0] while moving down: track the scroll 1:1
//  2. offset below the tracking band while moving down: snap hidden
//  3. offset below the origin while moving up or stationary: reveal
//  4. offset at or above the origin: no action, prior state persists
//
// It returns false when no action applies. Out-of-domain heights are not
// validated; with height <= 0 the tracking band is empty and branch 1
// never matches.
func Classify(offset, delta, height float64) (domain.Action, bool) {
	switch {
	case offset > -height && offset <= 0 && delta < 0:
		return domain.TrackAction(offset), true
	case offset < 0 && delta < 0:
		return domain.Action{Kind: domain.ActionHide}, true
	case offset < 0 && delta >= 0:
		return domain.Action{Kind: domain.ActionShow}, true
	}
	return domain.Action{}, false
}
