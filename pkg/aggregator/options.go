package aggregator

// SummaryOption configures a summary aggregator.
type SummaryOption func(*validitySummary) error

// WithWorkers sets the size of the classification worker pool. The default
// is the number of schedulable CPUs.
func WithWorkers(n int) SummaryOption {
	return func(a *validitySummary) error {
		if n < 1 {
			return errBadWorkerCount
		}
		a.workers = n
		return nil
	}
}
