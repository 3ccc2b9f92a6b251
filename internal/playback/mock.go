package playback

// Mock is a call-recording test double for Instance.
type Mock struct {
	rateErr error

	playCalls  int
	pauseCalls int
	resetCalls int
	durations  []float64
	rates      []float64
	times      []float64
}

// NewMock creates a new mock instance for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Play() { m.playCalls++ }

func (m *Mock) Pause() { m.pauseCalls++ }

func (m *Mock) ResetPositionTracking() { m.resetCalls++ }

func (m *Mock) SetDuration(seconds float64) {
	m.durations = append(m.durations, seconds)
}

func (m *Mock) SetPlaybackRate(rate float64) error {
	if m.rateErr != nil {
		return m.rateErr
	}
	m.rates = append(m.rates, rate)
	return nil
}

func (m *Mock) SetCurrentTime(seconds float64) {
	m.times = append(m.times, seconds)
}

// Test helpers

func (m *Mock) SetRateError(err error) { m.rateErr = err }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) ResetCalls() int { return m.resetCalls }

func (m *Mock) Durations() []float64 { return m.durations }

func (m *Mock) Rates() []float64 { return m.rates }

func (m *Mock) Times() []float64 { return m.times }

// Untouched reports whether no instance operation was recorded.
func (m *Mock) Untouched() bool {
	return m.playCalls == 0 && m.pauseCalls == 0 && m.resetCalls == 0 &&
		len(m.durations) == 0 && len(m.rates) == 0 && len(m.times) == 0
}

// Verify Mock implements Instance at compile time.
var _ Instance = (*Mock)(nil)
