package phase

// Aggregate sums the duration ledger per phase for one story and
// derives the percentage breakdowns. Every input phase appears in the
// output, with duration 0 when no ledger rows match.
//
// A percentage is 0 unless its phase accumulated time, and the
// non-first ratio additionally excludes phases with order 0. When the
// applicable denominator is 0 the percentage is 0 as well, never NaN
// or Inf.
func Aggregate(phases []Phase, entries []DurationEntry, storyID int64) ([]Annotated, Totals) {
	sums := make(map[int64]int64, len(phases))
	for _, e := range entries {
		if e.StoryID != storyID {
			continue
		}
		sums[e.PhaseID] += e.Duration
	}

	annotated := make([]Annotated, len(phases))
	var totals Totals
	for i, p := range phases {
		d := sums[p.ID]
		annotated[i] = Annotated{Phase: p, Duration: d}
		totals.TotalTime += d
		if p.Order != 0 {
			totals.TotalTimeNoFirst += d
		}
	}

	for i := range annotated {
		a := &annotated[i]
		if a.Duration <= 0 {
			continue
		}
		if a.Order != 0 && totals.TotalTimeNoFirst > 0 {
			a.PctOfNonFirst = float64(a.Duration) / float64(totals.TotalTimeNoFirst) * 100
		}
		if totals.TotalTime > 0 {
			a.PctOfTotal = float64(a.Duration) / float64(totals.TotalTime) * 100
		}
	}

	return annotated, totals
}
