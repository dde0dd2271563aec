package observability

// NoopObserver discards every operation. Useful as a default or in tests.
type NoopObserver struct{}

// ObserveOperation implements Observer.
func (NoopObserver) ObserveOperation(OperationContext) {}

// MultiObserver fans every operation out to a list of observers in order.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver combines several observers into one. Nil entries are
// dropped.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	m := &MultiObserver{}
	for _, o := range observers {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
	return m
}

// ObserveOperation implements Observer.
func (m *MultiObserver) ObserveOperation(ctx OperationContext) {
	for _, o := range m.observers {
		o.ObserveOperation(ctx)
	}
}
