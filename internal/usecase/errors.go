package usecase

import "errors"

var (
	// ErrQueryFailure matches every *QueryFailure through errors.Is.
	ErrQueryFailure           = errors.New("query failure")
	ErrInvalidSnapshotLimit   = errors.New("invalid snapshot limit")
	ErrSnapshotsNotConfigured = errors.New("metrics snapshot repository not configured")
)

// QueryFailure reports that the order store rejected a query, could not be
// reached, or answered with an unexpected shape. Error returns the upstream
// message unchanged.
type QueryFailure struct {
	Query string
	Err   error
}

func (e *QueryFailure) Error() string {
	if e.Err == nil {
		return ErrQueryFailure.Error()
	}
	return e.Err.Error()
}

func (e *QueryFailure) Unwrap() error { return e.Err }

func (e *QueryFailure) Is(target error) bool { return target == ErrQueryFailure }

func queryFailure(query string, err error) error {
	var qf *QueryFailure
	if errors.As(err, &qf) {
		return qf
	}
	return &QueryFailure{Query: query, Err: err}
}
