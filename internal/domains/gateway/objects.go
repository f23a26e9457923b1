package gateway

// Raw controller API shapes. Optional numerics are pointers so a field the
// controller omitted stays distinguishable from a reported zero.

type deviceListResponse struct {
	Data []deviceRecord `json:"data"`
}

type deviceRecord struct {
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	MAC       string    `json:"mac"`
	IP        string    `json:"ip"`
	Model     string    `json:"model"`
	Shortname string    `json:"shortname"`
	Version   string    `json:"version"`
	Uptime    int64     `json:"uptime"`
	Internet  bool      `json:"internet"`
	MBB       mbbRecord `json:"mbb"`
}

type mbbRecord struct {
	State      string           `json:"state"`
	Mode       string           `json:"mode"`
	IMEI       string           `json:"imei"`
	Radio      radioRecord      `json:"radio"`
	IPSettings ipSettingsRecord `json:"ip_settings"` //nolint:tagliatelle // controller API
	GeoInfo    geoInfoRecord    `json:"geo_info"`    //nolint:tagliatelle // controller API
	ESIM       esimRecord       `json:"esim"`
	SIM        []simRecord      `json:"sim"`
}

type radioRecord struct {
	RSRP              *float64 `json:"rsrp"`
	RSRQ              *float64 `json:"rsrq"`
	RSSI              *float64 `json:"rssi"`
	SNR               *float64 `json:"snr"`
	SignalPercent     *int     `json:"signal_percent"` //nolint:tagliatelle // controller API
	Signal            *int     `json:"signal"`
	RAT               string   `json:"rat"`
	RATModeActive     string   `json:"rat_mode_active"` //nolint:tagliatelle // controller API
	RAT5GUW           bool     `json:"rat_5g_uw"`       //nolint:tagliatelle // controller API
	Band              string   `json:"band"`
	Channel           *int     `json:"channel"`
	RxChan            *int     `json:"rx_chan"` //nolint:tagliatelle // controller API
	TxChan            *int     `json:"tx_chan"` //nolint:tagliatelle // controller API
	CellID            *int64   `json:"cell_id"` //nolint:tagliatelle // controller API
	NetworkOperator   string   `json:"networkoperator"`
	MCC               *int     `json:"mcc"`
	MNC               *int     `json:"mnc"`
	MCCCC2            string   `json:"mcc_cc2"` //nolint:tagliatelle // controller API
	Roaming           bool     `json:"roaming"`
	RegistrationState *int     `json:"registration_state"` //nolint:tagliatelle // controller API
}

type ipSettingsRecord struct {
	IPv4Address string `json:"ipv4_address"` //nolint:tagliatelle // controller API
	IPv4Gateway string `json:"ipv4_gateway"` //nolint:tagliatelle // controller API
	MTU         *int   `json:"mtu"`
}

type geoInfoRecord struct {
	Address string `json:"address"`
	ISP     string `json:"isp"`
}

type esimRecord struct {
	EID string `json:"eid"`
}

type simRecord struct {
	Slot         int        `json:"slot"`
	DisplayState string     `json:"display_state"` //nolint:tagliatelle // controller API
	SPN          string     `json:"spn"`
	ICCID        string     `json:"iccid"`
	Active       bool       `json:"active"`
	ESIM         bool       `json:"esim"`
	DataLimited  bool       `json:"data_limited"` //nolint:tagliatelle // controller API
	CurrentAPN   *apnRecord `json:"current_apn"`  //nolint:tagliatelle // controller API
	ASN          *int       `json:"asn"`
	RxBytes      int64      `json:"rxbytes"`
	TxBytes      int64      `json:"txbytes"`
}

type apnRecord struct {
	APN string `json:"apn"`
}

type healthResponse struct {
	Data []subsystemRecord `json:"data"`
}

type subsystemRecord struct {
	Subsystem   string                  `json:"subsystem"`
	UptimeStats map[string]uplinkRecord `json:"uptime_stats"` //nolint:tagliatelle // controller API
}

type uplinkRecord struct {
	WanIP          string   `json:"wan_ip"` //nolint:tagliatelle // controller API
	Availability   *float64 `json:"availability"`
	LatencyAverage *float64 `json:"latency_average"` //nolint:tagliatelle // controller API
	Uptime         *int64   `json:"uptime"`
}
