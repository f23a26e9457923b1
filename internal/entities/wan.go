package entities

// WanStatus is the raw per-interface record from the controller's health
// endpoint, before the cellular uplink has been identified.
type WanStatus struct {
	Name           string   `json:"name"`
	IP             string   `json:"ip"`
	Availability   *float64 `json:"availability"`
	LatencyAverage *float64 `json:"latencyAverage"`
	Uptime         *int64   `json:"uptime"`
}

type WanStatuses []WanStatus

// WanLink is the WAN interface that currently carries the cellular IP.
// Interface assignment can change across reboots and failover, so it is
// resolved fresh every cycle and never persisted.
type WanLink struct {
	Name           string   `json:"name"`
	Availability   *float64 `json:"availability"`
	LatencyAverage *float64 `json:"latencyAverage"`
	Uptime         *int64   `json:"uptime"`
}
