package entities

import "time"

// Snapshot is the aggregate of one successful fetch cycle. It is never
// mutated after construction; the poller replaces the published snapshot
// atomically.
type Snapshot struct {
	Device    CellularDevice `json:"device"`
	Sims      SimSlots       `json:"sims"`
	Wan       *WanLink       `json:"wan"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// PollerStatus tells consumers how fresh the published snapshot is.
type PollerStatus struct {
	LastSuccess         time.Time `json:"lastSuccess"`
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	Available           bool      `json:"available"`
	AuthFailed          bool      `json:"authFailed"`
}
