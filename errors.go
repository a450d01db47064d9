package signals

// ErrHubClosed is returned when operations are attempted on a closed hub.
type ErrHubClosed struct{}

func (ErrHubClosed) Error() string {
	return "signals: hub is closed"
}
