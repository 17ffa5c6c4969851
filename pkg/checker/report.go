package checker

import "sort"

// Report is the aggregated output of a run: one outcome per requested check,
// plus summary counts for presentation layers. It is a plain value; building
// it is pure and deterministic given the outcomes.
type Report struct {
	// Order preserves the request order of check IDs.
	Order    []string
	Outcomes map[string]Outcome
}

// Summary holds the per-check and per-category flagged-entity counts.
type Summary struct {
	PerCheck    map[string]int
	PerCategory map[string]int
	Failures    int
	Flagged     int
}

// NewReport merges per-check outcomes into a report keyed by check ID.
func NewReport(outcomes []Outcome) Report {
	rep := Report{
		Order:    make([]string, 0, len(outcomes)),
		Outcomes: make(map[string]Outcome, len(outcomes)),
	}
	for _, o := range outcomes {
		rep.Order = append(rep.Order, o.Check)
		rep.Outcomes[o.Check] = o
	}
	return rep
}

// Outcome returns the outcome for a check ID.
func (r Report) Outcome(id string) (Outcome, bool) {
	o, ok := r.Outcomes[id]
	return o, ok
}

// Clean reports whether every check ran and found nothing.
func (r Report) Clean() bool {
	for _, o := range r.Outcomes {
		if o.Err != nil {
			return false
		}
		if !o.Result.Empty() {
			return false
		}
	}
	return true
}

// Summarize computes flagged-entity counts per check and per category, and
// the number of failed checks.
func (r Report) Summarize() Summary {
	s := Summary{
		PerCheck:    make(map[string]int),
		PerCategory: make(map[string]int),
	}
	for _, id := range r.Order {
		o := r.Outcomes[id]
		if o.Err != nil {
			s.Failures++
			continue
		}
		n := o.Result.Count()
		s.PerCheck[id] = n
		s.PerCategory[o.Category] += n
		s.Flagged += n
	}
	return s
}

// FailedChecks returns the IDs of checks that could not run, sorted.
func (r Report) FailedChecks() []string {
	var out []string
	for id, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
