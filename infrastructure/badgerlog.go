package infrastructure

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

// badgerLogger routes badger's internal logging into zerolog.
type badgerLogger struct{}

func newBadgerLogger() badger.Logger {
	return badgerLogger{}
}

func (badgerLogger) Errorf(format string, args ...any) {
	log.Error().Msg(render(format, args))
}

func (badgerLogger) Warningf(format string, args ...any) {
	log.Warn().Msg(render(format, args))
}

func (badgerLogger) Infof(format string, args ...any) {
	log.Debug().Msg(render(format, args))
}

func (badgerLogger) Debugf(format string, args ...any) {
	log.Debug().Msg(render(format, args))
}

func render(format string, args []any) string {
	return "badger: " + strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
