// internal/writer/types.go
package writer

// Sink is what the poller publishes through.
// IMPORTANT: There must be NO other version of this interface anywhere.
type Sink interface {
	Publish(microvolts int64, capacity int, status string) error
}
