package session

// StateError reports a rejected position state candidate. Reason is a
// fixed message identifying the first failed validation check.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string {
	return e.Reason
}
