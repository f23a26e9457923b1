package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/panics"

	"github.com/netvista-io/cellular-agent/internal/entities"
	"github.com/netvista-io/cellular-agent/internal/errs"
)

type (
	IGatewayService interface {
		ListCellularDevices(ctx context.Context) (devices []entities.CellularDevice, err error)
		FetchSimSlots(ctx context.Context, mac string) (slots entities.SimSlots, err error)
		FetchWanStatuses(ctx context.Context) (statuses entities.WanStatuses, err error)
	}

	IWanService interface {
		Resolve(cellularIP string, statuses entities.WanStatuses) (link entities.WanLink, found bool)
	}

	ISnapshotService interface {
		Build(device *entities.CellularDevice, sims entities.SimSlots, wanLink *entities.WanLink) (snap entities.Snapshot, err error)
	}

	IStoreService interface {
		Save(snap entities.Snapshot) (err error)
		Load() (snap *entities.Snapshot, err error)
	}

	IDumpStatService interface {
		DumpSnapshot(snap *entities.Snapshot, status entities.PollerStatus)
	}
)

type Service struct {
	gatewayService  IGatewayService
	wanService      IWanService
	snapshotService ISnapshotService
	storeService    IStoreService
	dumpStatService IDumpStatService

	interval         time.Duration
	failureThreshold int

	// cycleMx enforces the at-most-one-concurrent-fetch invariant.
	cycleMx   sync.Mutex
	published atomic.Pointer[entities.Snapshot]

	statusMx sync.Mutex
	status   entities.PollerStatus
}

func NewService(
	gatewayService IGatewayService,
	wanService IWanService,
	snapshotService ISnapshotService,
	storeService IStoreService,
	dumpStatService IDumpStatService,
	interval time.Duration,
	failureThreshold int,
) *Service {
	return &Service{
		gatewayService:  gatewayService,
		wanService:      wanService,
		snapshotService: snapshotService,
		storeService:    storeService,
		dumpStatService: dumpStatService,

		interval:         interval,
		failureThreshold: failureThreshold,
	}
}

// Start restores the persisted snapshot, runs one cycle immediately and then
// keeps refreshing on the configured interval until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	s.restore()

	if err := s.Refresh(ctx); err != nil {
		log.Error().Err(err).Msg("Start: initial fetch cycle failed")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				log.Error().Err(err).Msg("Start: fetch cycle failed")
			}
		}
	}
}

// Refresh runs a single fetch cycle. A trigger while another cycle is in
// flight is a no-op: the gateway never sees overlapping request bursts.
func (s *Service) Refresh(ctx context.Context) (err error) {
	if !s.cycleMx.TryLock() {
		log.Debug().Msg("Refresh: cycle already in flight, skipping")
		return nil
	}
	defer s.cycleMx.Unlock()

	// A panicking cycle must not take down the host process.
	recovered := panics.Try(func() {
		err = s.runCycle(ctx)
	})
	if recovered != nil {
		err = fmt.Errorf("Refresh: cycle panic: %v", recovered.Value)
	}

	if err != nil {
		// Shutdown aborts the in-flight fetch; that is not a controller failure.
		if ctx.Err() != nil {
			return err
		}

		s.recordFailure(err)

		return err
	}

	s.recordSuccess()

	return nil
}

// Latest returns the published snapshot, nil before the first successful
// cycle of a fresh install. The snapshot is immutable, readers share it.
func (s *Service) Latest() *entities.Snapshot {
	return s.published.Load()
}

func (s *Service) Status() entities.PollerStatus {
	s.statusMx.Lock()
	defer s.statusMx.Unlock()

	return s.status
}

func (s *Service) runCycle(ctx context.Context) (err error) {
	devices, err := s.gatewayService.ListCellularDevices(ctx)
	if err != nil {
		return fmt.Errorf("runCycle: %w", err)
	}

	// Exactly one device per cycle: the first of the matching hardware type.
	var device *entities.CellularDevice
	if len(devices) > 0 {
		device = &devices[0]
	}

	var (
		sims    entities.SimSlots
		wanLink *entities.WanLink
	)
	if device != nil {
		// Partial data is preferable to no data: SIM and WAN failures degrade
		// to absent optional fields instead of failing the cycle.
		if sims, err = s.gatewayService.FetchSimSlots(ctx, device.MAC); err != nil {
			log.Warn().Err(err).Msg("runCycle: SIM fetch failed, continuing without slots")
			sims = nil
		}

		statuses, wanErr := s.gatewayService.FetchWanStatuses(ctx)
		switch {
		case wanErr != nil:
			log.Warn().Err(wanErr).Msg("runCycle: WAN status fetch failed, continuing without link")
		default:
			if link, found := s.wanService.Resolve(device.CellularIP, statuses); found {
				wanLink = &link
			} else {
				log.Debug().
					Str("cellular ip", device.CellularIP).
					Msg("runCycle: no WAN interface carries the cellular IP")
			}
		}
	}

	snap, err := s.snapshotService.Build(device, sims, wanLink)
	if err != nil {
		return fmt.Errorf("runCycle: %w", err)
	}

	if err = s.storeService.Save(snap); err != nil {
		log.Warn().Err(err).Msg("runCycle: snapshot persist failed")
	}

	s.published.Store(&snap)

	return nil
}

// restore republishes the last persisted snapshot so consumers have
// stale-but-available data before the first cycle completes.
func (s *Service) restore() {
	snap, err := s.storeService.Load()
	if err != nil {
		log.Warn().Err(err).Msg("restore: load persisted snapshot failed")
		return
	}

	if snap == nil {
		return
	}

	s.published.Store(snap)
	log.Info().
		Time("fetched at", snap.FetchedAt).
		Msg("restore: republished persisted snapshot")
}

func (s *Service) recordSuccess() {
	s.statusMx.Lock()
	defer s.statusMx.Unlock()

	s.status.LastSuccess = time.Now().UTC()
	s.status.ConsecutiveFailures = 0
	s.status.Available = true
	s.status.AuthFailed = false
}

func (s *Service) recordFailure(err error) {
	s.statusMx.Lock()
	s.status.ConsecutiveFailures++
	s.status.Available = !s.status.LastSuccess.IsZero() &&
		s.status.ConsecutiveFailures < s.failureThreshold

	switch {
	case errors.Is(err, errs.ErrAuth):
		// Fatal to the integration until the operator rotates the key.
		s.status.AuthFailed = true
		log.Error().Err(err).Msg("recordFailure: authentication failed, API key needs reconfiguration")
	case errors.Is(err, errs.ErrNoCellularDevice):
		log.Error().Err(err).Msg("recordFailure: controller has no cellular device, check the site configuration")
	}

	var (
		status           = s.status
		crossedThreshold = s.status.ConsecutiveFailures == s.failureThreshold
	)
	s.statusMx.Unlock()

	if crossedThreshold {
		log.Warn().
			Int("consecutive failures", status.ConsecutiveFailures).
			Msg("recordFailure: metrics now marked unavailable")
		s.dumpStatService.DumpSnapshot(s.published.Load(), status)
	}
}
