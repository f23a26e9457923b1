package environment

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/netvista-io/cellular-agent/internal/constants"
)

type Environment struct {
	Agent
}

type Agent struct {
	Controller       string `validate:"required"`
	APIKey           string `validate:"required"`
	Site             string
	VerifySSL        bool
	PollInterval     time.Duration `validate:"gt=0"`
	FailureThreshold int           `validate:"gt=0"`
	DataDir          string
	LogfilePath      string
	LogLevel         string
}

func New() (e Environment, err error) {
	v := viper.New()
	v.SetEnvPrefix("AGENT")
	v.AutomaticEnv()

	e.Agent.Controller = v.GetString("CONTROLLER")
	e.Agent.APIKey = v.GetString("API_KEY")
	e.Agent.VerifySSL = v.GetBool("VERIFY_SSL")

	e.Agent.Site = v.GetString("SITE")
	if lo.IsEmpty(e.Agent.Site) {
		e.Agent.Site = constants.DefaultSite
	}

	e.Agent.PollInterval = v.GetDuration("POLL_INTERVAL")
	if e.Agent.PollInterval <= 0 {
		e.Agent.PollInterval = constants.DefaultPollInterval
	}

	e.Agent.FailureThreshold = v.GetInt("FAILURE_THRESHOLD")
	if e.Agent.FailureThreshold <= 0 {
		e.Agent.FailureThreshold = constants.DefaultFailureThreshold
	}

	e.Agent.DataDir = v.GetString("DATA_DIR")
	if lo.IsEmpty(e.Agent.DataDir) {
		e.Agent.DataDir = constants.DefaultDataDir
	}

	e.Agent.LogfilePath = v.GetString("LOG_FILE")
	if lo.IsEmpty(e.Agent.LogfilePath) {
		e.Agent.LogfilePath = constants.DefaultLogfilePath
	}

	e.Agent.LogLevel = v.GetString("LOG_LEVEL")
	if lo.IsEmpty(e.Agent.LogLevel) {
		e.Agent.LogLevel = "info"
	}

	if err = validator.New().Struct(e.Agent); err != nil {
		return e, fmt.Errorf("New: %w", err)
	}

	return e, nil
}

func (e Agent) IsDebug() bool {
	return e.LogLevel == "debug"
}
