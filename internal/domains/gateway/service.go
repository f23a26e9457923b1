package gateway

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/netvista-io/cellular-agent/internal/constants"
	"github.com/netvista-io/cellular-agent/internal/entities"
	"github.com/netvista-io/cellular-agent/internal/errs"
)

type (
	ITransportService interface {
		Get(ctx context.Context, path string, result any) (err error)
	}

	Service struct {
		transportService ITransportService
		site             string
	}
)

func NewService(transportService ITransportService, site string) *Service {
	return &Service{
		transportService: transportService,
		site:             site,
	}
}

// ListCellularDevices returns the site's adopted devices filtered to the
// cellular modem hardware type.
func (s *Service) ListCellularDevices(ctx context.Context) (devices []entities.CellularDevice, err error) {
	var resp deviceListResponse
	path := fmt.Sprintf(constants.APIDevicesPathTemplate, s.site)
	if err = s.transportService.Get(ctx, path, &resp); err != nil {
		return devices, fmt.Errorf("ListCellularDevices: %w: %w", errs.ErrEndpoint, err)
	}

	for _, record := range resp.Data {
		if record.Type != constants.DeviceTypeMBB {
			continue
		}

		devices = append(devices, mapDevice(record))
	}

	return devices, nil
}

// FetchSimSlots reads the device detail record and extracts its SIM slots,
// ordered by slot index.
func (s *Service) FetchSimSlots(ctx context.Context, mac string) (slots entities.SimSlots, err error) {
	var resp deviceListResponse
	path := fmt.Sprintf(constants.APIDeviceDetailPathTemplate, s.site, mac)
	if err = s.transportService.Get(ctx, path, &resp); err != nil {
		return slots, fmt.Errorf("FetchSimSlots: %w: %w", errs.ErrEndpoint, err)
	}

	record, found := lo.Find(resp.Data, func(r deviceRecord) bool {
		return strings.EqualFold(r.MAC, mac)
	})
	if !found {
		return slots, nil
	}

	for _, sim := range record.MBB.SIM {
		slots = append(slots, mapSimSlot(sim))
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Slot < slots[j].Slot
	})

	return slots, nil
}

// FetchWanStatuses returns the current state of the site's WAN uplinks from
// the health endpoint.
func (s *Service) FetchWanStatuses(ctx context.Context) (statuses entities.WanStatuses, err error) {
	var resp healthResponse
	path := fmt.Sprintf(constants.APIHealthPathTemplate, s.site)
	if err = s.transportService.Get(ctx, path, &resp); err != nil {
		return statuses, fmt.Errorf("FetchWanStatuses: %w: %w", errs.ErrEndpoint, err)
	}

	for _, subsystem := range resp.Data {
		if subsystem.Subsystem != constants.WanSubsystem {
			continue
		}

		for name, uplink := range subsystem.UptimeStats {
			statuses = append(statuses, entities.WanStatus{
				Name:           strings.ToLower(name),
				IP:             uplink.WanIP,
				Availability:   uplink.Availability,
				LatencyAverage: uplink.LatencyAverage,
				Uptime:         uplink.Uptime,
			})
		}
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Name < statuses[j].Name
	})

	return statuses, nil
}

func mapDevice(record deviceRecord) entities.CellularDevice {
	radio := record.MBB.Radio

	return entities.CellularDevice{
		MAC:       record.MAC,
		Name:      record.Name,
		Model:     record.Model,
		Shortname: record.Shortname,
		Firmware:  record.Version,
		IP:        record.IP,
		Uptime:    record.Uptime,
		Internet:  record.Internet,

		State:   record.MBB.State,
		MBBMode: record.MBB.Mode,
		IMEI:    record.MBB.IMEI,
		ESIMEID: record.MBB.ESIM.EID,

		CellularIP:      record.MBB.IPSettings.IPv4Address,
		CellularGateway: record.MBB.IPSettings.IPv4Gateway,
		MTU:             record.MBB.IPSettings.MTU,
		PublicIP:        record.MBB.GeoInfo.Address,
		ISP:             record.MBB.GeoInfo.ISP,

		Radio: entities.Radio{
			RAT:               radio.RAT,
			RATModeActive:     radio.RATModeActive,
			RAT5GUW:           radio.RAT5GUW,
			Band:              radio.Band,
			Channel:           radio.Channel,
			RxChannel:         radio.RxChan,
			TxChannel:         radio.TxChan,
			CellID:            radio.CellID,
			Operator:          radio.NetworkOperator,
			MCC:               radio.MCC,
			MNC:               radio.MNC,
			Country:           radio.MCCCC2,
			Roaming:           radio.Roaming,
			RegistrationState: radio.RegistrationState,
		},
		Signal: entities.Signal{
			RSRP:            radio.RSRP,
			RSRQ:            radio.RSRQ,
			RSSI:            radio.RSSI,
			SNR:             radio.SNR,
			StrengthPercent: radio.SignalPercent,
			Level:           radio.Signal,
		},
	}
}

func mapSimSlot(sim simRecord) entities.SimSlot {
	var apn string
	if sim.CurrentAPN != nil {
		apn = sim.CurrentAPN.APN
	}

	return entities.SimSlot{
		Slot:        sim.Slot,
		State:       sim.DisplayState,
		Carrier:     sim.SPN,
		ICCID:       sim.ICCID,
		Active:      sim.Active,
		ESIM:        sim.ESIM,
		DataLimited: sim.DataLimited,
		APN:         apn,
		ASN:         sim.ASN,
		RxBytes:     sim.RxBytes,
		TxBytes:     sim.TxBytes,
	}
}
