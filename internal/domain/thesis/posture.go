package thesis

// DecidePosture folds the four verdict statuses into one call:
// two or more fails is a No, a clean sheet of passes is a Go,
// anything in between is a Wait.
func DecidePosture(filters map[string]FilterVerdict) Posture {
	var passes, fails, needs int
	for _, verdict := range filters {
		switch verdict.Status {
		case StatusPass:
			passes++
		case StatusFail:
			fails++
		case StatusNeedsData:
			needs++
		}
	}

	switch {
	case fails >= 2:
		return PostureNo
	case fails == 0 && needs == 0 && passes >= 3:
		return PostureGo
	default:
		return PostureWait
	}
}
