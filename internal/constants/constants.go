package constants

import "time"

const (
	// DeviceTypeMBB is the controller's type tag for cellular modem devices.
	DeviceTypeMBB = "umbb"

	WanSubsystem = "wan"
)

const (
	APIDevicesPathTemplate      = "/proxy/network/api/s/%s/stat/device"
	APIDeviceDetailPathTemplate = "/proxy/network/api/s/%s/stat/device/%s"
	APIHealthPathTemplate       = "/proxy/network/api/s/%s/stat/health"

	APIKeyHeader = "X-API-Key"
)

const (
	DefaultSite             = "default"
	DefaultPollInterval     = time.Second * 30
	DefaultFailureThreshold = 3
	RequestTimeout          = time.Second * 10
)

const (
	FilePerm    = 0755
	LogFilePerm = 0644
)

const (
	DefaultLogfilePath = "/var/log/cellular-agent/agent.log"
	DefaultDataDir     = "/var/lib/cellular-agent"
)
