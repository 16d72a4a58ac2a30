package sentinel

import "errors"

// Store-level facts. Stores return these (optionally wrapped) and services
// translate them into domain errors:
//   - ErrNotFound: the row does not exist
//   - ErrConflict: a conditional write lost against a concurrent change
//   - ErrUnavailable: a backing service (cache, broker) could not be reached
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
