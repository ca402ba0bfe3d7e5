package core

// Metrics records domain events. Implementations must tolerate concurrent use.
type Metrics interface {
	TransactionCreated(txType, status string)
	TransactionDecided(outcome string)
	KYCSubmitted()
	KYCDecided(outcome string)
	AuthEvent(event, result string)
}

// NoopMetrics discards everything
type NoopMetrics struct{}

func (NoopMetrics) TransactionCreated(string, string) {}
func (NoopMetrics) TransactionDecided(string)         {}
func (NoopMetrics) KYCSubmitted()                     {}
func (NoopMetrics) KYCDecided(string)                 {}
func (NoopMetrics) AuthEvent(string, string)          {}
