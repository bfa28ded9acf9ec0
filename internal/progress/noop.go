package progress

// Noop is an indicator for headless mode
type Noop struct{}

// Busy does nothing
func (Noop) Busy() {}

// SetPercent does nothing
func (Noop) SetPercent(int) {}

// Stop does nothing
func (Noop) Stop() {}
