package events

// Collector is embedded in aggregates to gather events raised during a state change.
// The zero value is ready to use.
type Collector struct {
	pending []DomainEvent
}

// Record appends events to the pending list.
func (c *Collector) Record(evts ...DomainEvent) {
	c.pending = append(c.pending, evts...)
}

// DomainEvents returns a copy of the pending events without clearing them.
func (c *Collector) DomainEvents() []DomainEvent {
	if len(c.pending) == 0 {
		return nil
	}
	out := make([]DomainEvent, len(c.pending))
	copy(out, c.pending)
	return out
}

// ClearDomainEvents returns the pending events and empties the collector.
func (c *Collector) ClearDomainEvents() []DomainEvent {
	out := c.pending
	c.pending = nil
	return out
}
