package errs

import "errors"

var (
	ErrAuth        = errors.New("authentication failed")
	ErrUnreachable = errors.New("controller unreachable")
	ErrProtocol    = errors.New("unexpected controller response")
)

var (
	ErrEndpoint         = errors.New("endpoint fetch failed")
	ErrNoCellularDevice = errors.New("no cellular device found")
)
