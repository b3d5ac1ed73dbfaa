package services

// Outcome reports how a best-effort side effect went. Applied stays true
// even when parts degraded, because the primary write already committed.
type Outcome struct {
	Applied  bool     `json:"applied"`
	Degraded []string `json:"degraded,omitempty"`
}

func (o *Outcome) Degrade(reason string) {
	o.Degraded = append(o.Degraded, reason)
}

func (o *Outcome) Ok() bool {
	return o.Applied && len(o.Degraded) == 0
}
