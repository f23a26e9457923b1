package snapshot

import (
	"fmt"
	"time"

	"github.com/netvista-io/cellular-agent/internal/entities"
	"github.com/netvista-io/cellular-agent/internal/errs"
)

// Quality bands per standard cellular signal conventions. A value at or above
// the first threshold rates Excellent, then Good, then Fair, else Poor.
var (
	rsrpThresholds = [3]float64{-80, -95, -110} // dBm
	rsrqThresholds = [3]float64{-5, -10, -15}   // dB
	snrThresholds  = [3]float64{20, 10, 3}      // dB
)

// Signal strength derivation band: RSRP −110 dBm maps to 0%, −80 dBm to 100%.
const (
	strengthFloorRSRP   = -110.0
	strengthCeilingRSRP = -80.0
)

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{
		now: time.Now,
	}
}

// Build assembles the immutable snapshot for one fetch cycle. It is pure over
// its inputs apart from the timestamp: missing SIM records or WAN link degrade
// to absent optional fields, only a missing device fails the build.
func (s *Service) Build(device *entities.CellularDevice, sims entities.SimSlots, wanLink *entities.WanLink) (snap entities.Snapshot, err error) {
	if device == nil {
		return snap, fmt.Errorf("Build: %w", errs.ErrNoCellularDevice)
	}

	snap.Device = *device
	snap.Device.Signal = deriveSignal(device.Signal)
	snap.Sims = sims
	snap.Wan = wanLink
	snap.FetchedAt = s.now().UTC()

	return snap, nil
}

func deriveSignal(signal entities.Signal) entities.Signal {
	signal.RSRPRating = rate(signal.RSRP, rsrpThresholds)
	signal.RSRQRating = rate(signal.RSRQ, rsrqThresholds)
	signal.SNRRating = rate(signal.SNR, snrThresholds)

	// The controller's own percentage wins when reported.
	if signal.StrengthPercent == nil {
		signal.StrengthPercent = strengthFromRSRP(signal.RSRP)
	}

	return signal
}

func rate(value *float64, thresholds [3]float64) entities.Rating {
	switch {
	case value == nil:
		return entities.RatingUnknown
	case *value >= thresholds[0]:
		return entities.RatingExcellent
	case *value >= thresholds[1]:
		return entities.RatingGood
	case *value >= thresholds[2]:
		return entities.RatingFair
	default:
		return entities.RatingPoor
	}
}

func strengthFromRSRP(rsrp *float64) *int {
	if rsrp == nil {
		return nil
	}

	percent := (*rsrp - strengthFloorRSRP) / (strengthCeilingRSRP - strengthFloorRSRP) * 100
	switch {
	case percent < 0:
		percent = 0
	case percent > 100:
		percent = 100
	}

	result := int(percent)

	return &result
}
