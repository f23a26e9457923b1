package wan

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/netvista-io/cellular-agent/internal/entities"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Resolve finds the WAN interface currently carrying the cellular IP.
// The result is recomputed from scratch every cycle: failover can move the
// cellular uplink to a different physical WAN port at any time, so nothing
// here is cached. If several interfaces report the same IP the
// lowest-numbered one wins ("wan" < "wan2" < "wan3").
func (s *Service) Resolve(cellularIP string, statuses entities.WanStatuses) (link entities.WanLink, found bool) {
	if lo.IsEmpty(cellularIP) {
		return link, false
	}

	matches := lo.Filter(statuses, func(status entities.WanStatus, _ int) bool {
		return status.IP == cellularIP
	})
	if len(matches) == 0 {
		return link, false
	}

	match := lo.MinBy(matches, func(a, b entities.WanStatus) bool {
		numA, numB := interfaceNumber(a.Name), interfaceNumber(b.Name)
		if numA != numB {
			return numA < numB
		}

		return a.Name < b.Name
	})

	return entities.WanLink{
		Name:           match.Name,
		Availability:   match.Availability,
		LatencyAverage: match.LatencyAverage,
		Uptime:         match.Uptime,
	}, true
}

// interfaceNumber extracts the ordinal from an interface name: "wan" is 1,
// "wan2" is 2. Names without a trailing number sort first within their ordinal.
func interfaceNumber(name string) int {
	digits := strings.TrimLeftFunc(name, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if lo.IsEmpty(digits) {
		return 1
	}

	num, err := strconv.Atoi(digits)
	if err != nil {
		return 1
	}

	return num
}
