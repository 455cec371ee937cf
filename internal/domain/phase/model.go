package phase

// Phase is an ordered workflow stage within a project. Order defines the
// sequence; the minimum-order not-done phase is the first-phase target
// for backlog moves.
type Phase struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
	IsDone    bool   `json:"is_done"`
}

// DurationEntry is one ledger row of time spent by a story within a
// phase. Several rows may exist for the same (phase, story) pair and
// are summed during aggregation.
type DurationEntry struct {
	ID       int64 `json:"id"`
	PhaseID  int64 `json:"phase_id"`
	StoryID  int64 `json:"story_id"`
	Duration int64 `json:"duration"` // seconds
}

// Annotated is a phase enriched with its accumulated duration and the
// derived percentage breakdowns.
type Annotated struct {
	Phase
	Duration      int64   `json:"duration"`
	PctOfNonFirst float64 `json:"pct_of_non_first"`
	PctOfTotal    float64 `json:"pct_of_total"`
}

// Totals holds story-level duration sums over a phase set.
type Totals struct {
	TotalTime        int64 `json:"total_time"`
	TotalTimeNoFirst int64 `json:"total_time_no_first"`
}

// First returns the phase with the minimum order, or false when the
// set is empty.
func First(phases []Phase) (Phase, bool) {
	if len(phases) == 0 {
		return Phase{}, false
	}
	first := phases[0]
	for _, p := range phases[1:] {
		if p.Order < first.Order {
			first = p
		}
	}
	return first, true
}

// IDs returns the phase ids of the set, in order.
func IDs(phases []Phase) []int64 {
	ids := make([]int64, len(phases))
	for i, p := range phases {
		ids[i] = p.ID
	}
	return ids
}
