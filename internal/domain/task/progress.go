package task

import "math"

// Progress reports task counts and the completion percentage for a
// story's task list. The percentage is zero whenever no task is done;
// guarding on the done count also covers the empty list without a
// separate check on the total.
func Progress(tasks []Task) (total, done, pct int) {
	total = len(tasks)
	for _, t := range tasks {
		if t.IsDone {
			done++
		}
	}
	if done > 0 {
		pct = int(math.Round(float64(done) / float64(total) * 100))
	}
	return total, done, pct
}
