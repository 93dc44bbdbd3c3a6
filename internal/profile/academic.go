package profile

// Normalize reduces a raw test attempt to the signals category rules read.
// Upstream validation should have rejected total_questions == 0 already; the
// guard here keeps a bad row from ever poisoning a profile.
func Normalize(r AcademicResult) (AcademicSignals, error) {
	if r.TotalQuestions <= 0 {
		return AcademicSignals{}, &ValidationError{Field: "total_questions", Msg: "must be positive"}
	}
	if r.Score < 0 {
		return AcademicSignals{}, &ValidationError{Field: "score", Msg: "must be non-negative"}
	}
	if r.TimeTakenSec < 0 {
		return AcademicSignals{}, &ValidationError{Field: "time_taken_seconds", Msg: "must be non-negative"}
	}
	return AcademicSignals{
		Percentage:   100.0 * float64(r.Score) / float64(r.TotalQuestions),
		TimeTakenSec: r.TimeTakenSec,
	}, nil
}
