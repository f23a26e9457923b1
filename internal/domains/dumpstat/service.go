package dumpstat

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/netvista-io/cellular-agent/internal/entities"
)

var simHeaderKeys = table.Row{"#", "STATE", "CARRIER", "ICCID", "ACTIVE", "ESIM", "APN", "RX BYTES", "TX BYTES"}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// DumpSnapshot writes the last known telemetry into the log. The poller calls
// it when the controller has been unreachable long enough to mark metrics
// unavailable, so the operator can see what was last observed.
func (s *Service) DumpSnapshot(snap *entities.Snapshot, status entities.PollerStatus) {
	if snap == nil {
		log.Info().
			Int("consecutive failures", status.ConsecutiveFailures).
			Msg("DumpSnapshot: no snapshot fetched yet")
		return
	}

	msg := log.Info().
		Time("fetched at", snap.FetchedAt).
		Int("consecutive failures", status.ConsecutiveFailures).
		Bool("auth failed", status.AuthFailed).
		Str("device", formatDeviceLine(snap.Device))

	if len(snap.Sims) > 0 {
		msg = msg.Str("sims", formatSimTable(snap.Sims))
	}

	if snap.Wan != nil {
		msg = msg.Str("wan", formatWanLine(*snap.Wan))
	}

	msg.Msg("DumpSnapshot: last known telemetry")
}

func formatDeviceLine(device entities.CellularDevice) string {
	model := device.Shortname
	if lo.IsEmpty(model) {
		model = device.Model
	}

	return fmt.Sprintf("%s (%s) state=%s rat=%s operator=%s rsrp=%s signal=%s%%",
		device.Name,
		model,
		device.State,
		device.Radio.RAT,
		device.Radio.Operator,
		formatOptional(device.Signal.RSRP),
		formatOptional(device.Signal.StrengthPercent),
	)
}

func formatSimTable(sims entities.SimSlots) string {
	t := table.NewWriter()
	t.AppendHeader(simHeaderKeys)

	for _, sim := range sims {
		t.AppendRow(table.Row{
			sim.Slot,
			sim.State,
			sim.Carrier,
			sim.ICCID,
			sim.Active,
			sim.ESIM,
			sim.APN,
			sim.RxBytes,
			sim.TxBytes,
		})
	}

	return t.Render()
}

func formatWanLine(link entities.WanLink) string {
	return fmt.Sprintf("%s availability=%s%% latency=%sms uptime=%ss",
		link.Name,
		formatOptional(link.Availability),
		formatOptional(link.LatencyAverage),
		formatOptional(link.Uptime),
	)
}

func formatOptional[T any](value *T) string {
	if value == nil {
		return "n/a"
	}

	return fmt.Sprintf("%v", *value)
}
