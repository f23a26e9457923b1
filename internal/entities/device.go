package entities

// Rating buckets a raw signal measurement into a human-meaningful quality band.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingFair      Rating = "Fair"
	RatingPoor      Rating = "Poor"
	RatingUnknown   Rating = "N/A"
)

type CellularDevice struct {
	MAC       string `json:"mac"`
	Name      string `json:"name"`
	Model     string `json:"model"`
	Shortname string `json:"shortname"`
	Firmware  string `json:"firmware"`
	IP        string `json:"ip"`
	Uptime    int64  `json:"uptime"`
	Internet  bool   `json:"internet"`

	State   string `json:"state"`
	MBBMode string `json:"mbbMode"`
	IMEI    string `json:"imei"`
	ESIMEID string `json:"esimEid"`

	CellularIP      string `json:"cellularIp"`
	CellularGateway string `json:"cellularGateway"`
	MTU             *int   `json:"mtu"`
	PublicIP        string `json:"publicIp"`
	ISP             string `json:"isp"`

	Radio  Radio  `json:"radio"`
	Signal Signal `json:"signal"`
}

type Radio struct {
	RAT               string `json:"rat"`
	RATModeActive     string `json:"ratModeActive"`
	RAT5GUW           bool   `json:"rat5gUw"`
	Band              string `json:"band"`
	Channel           *int   `json:"channel"`
	RxChannel         *int   `json:"rxChannel"`
	TxChannel         *int   `json:"txChannel"`
	CellID            *int64 `json:"cellId"`
	Operator          string `json:"operator"`
	MCC               *int   `json:"mcc"`
	MNC               *int   `json:"mnc"`
	Country           string `json:"country"`
	Roaming           bool   `json:"roaming"`
	RegistrationState *int   `json:"registrationState"`
}

// Signal carries raw measurements as reported by the modem plus values derived
// by the snapshot builder. Absent measurements stay nil rather than zero.
type Signal struct {
	RSRP            *float64 `json:"rsrp"`
	RSRQ            *float64 `json:"rsrq"`
	RSSI            *float64 `json:"rssi"`
	SNR             *float64 `json:"snr"`
	StrengthPercent *int     `json:"strengthPercent"`
	Level           *int     `json:"level"`

	RSRPRating Rating `json:"rsrpRating"`
	RSRQRating Rating `json:"rsrqRating"`
	SNRRating  Rating `json:"snrRating"`
}

// SimSlot is one physical or embedded SIM of a cellular device. RxBytes and
// TxBytes are cumulative counters; an ICCID change starts a new counter epoch
// and consumers must not treat the reset as an error.
type SimSlot struct {
	Slot        int    `json:"slot"`
	State       string `json:"state"`
	Carrier     string `json:"carrier"`
	ICCID       string `json:"iccid"`
	Active      bool   `json:"active"`
	ESIM        bool   `json:"esim"`
	DataLimited bool   `json:"dataLimited"`
	APN         string `json:"apn"`
	ASN         *int   `json:"asn"`
	RxBytes     int64  `json:"rxBytes"`
	TxBytes     int64  `json:"txBytes"`
}

type SimSlots []SimSlot
