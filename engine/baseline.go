package engine

import "github.com/quantsim/marketreplay/report"

// Baseline derives the cumulative-return report from the materialised
// tables. It reads only the independent copies taken at construction, so it
// is safe before, during or after a replay
func (f *Feed) Baseline() (*report.Baseline, error) {
	return report.Create(f.universe, f.materialized)
}
