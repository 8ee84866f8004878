package domain

// LookupResult is the terminal outcome of a weather lookup: exactly one of
// a report or a failure.
type LookupResult struct {
	report  string
	failure *Failure
}

// Failure describes why a lookup did not produce a report.
type Failure struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Err        error
}

func Success(report string) LookupResult {
	return LookupResult{report: report}
}

// Failed builds a failure result classified from err.
func Failed(err error) LookupResult {
	return LookupResult{failure: &Failure{
		Kind:       KindOf(err),
		Message:    MessageOf(err),
		StatusCode: StatusCodeOf(err),
		Err:        err,
	}}
}

func (r LookupResult) OK() bool { return r.failure == nil }

// Report returns the report and true on success.
func (r LookupResult) Report() (string, bool) {
	if r.failure != nil {
		return "", false
	}
	return r.report, true
}

// Failure returns the failure and true when the lookup failed.
func (r LookupResult) Failure() (Failure, bool) {
	if r.failure == nil {
		return Failure{}, false
	}
	return *r.failure, true
}

// Err returns the original error, or nil on success.
func (r LookupResult) Err() error {
	if r.failure == nil {
		return nil
	}
	return r.failure.Err
}
