package infrastructure

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/netvista-io/cellular-agent/internal/domains/dumpstat"
	"github.com/netvista-io/cellular-agent/internal/domains/gateway"
	"github.com/netvista-io/cellular-agent/internal/domains/poller"
	"github.com/netvista-io/cellular-agent/internal/domains/snapshot"
	"github.com/netvista-io/cellular-agent/internal/domains/store"
	"github.com/netvista-io/cellular-agent/internal/domains/transport"
	"github.com/netvista-io/cellular-agent/internal/domains/wan"
	"github.com/netvista-io/cellular-agent/internal/environment"
)

type Kernel struct {
	env environment.Environment

	DB *badger.DB
}

func Inject(env environment.Environment) (k *Kernel, err error) {
	k = &Kernel{
		env: env,
	}

	options := badger.DefaultOptions(env.DataDir).
		WithLogger(newBadgerLogger()).
		WithMemTableSize(64 << 17) // ~8MB

	if k.DB, err = badger.Open(options); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	return k, nil
}

var (
	transportService     *transport.Service
	transportServiceOnce sync.Once
)

func (k *Kernel) InjectTransportService() *transport.Service {
	transportServiceOnce.Do(func() {
		transportService = transport.NewService(k.env)
	})

	return transportService
}

var (
	gatewayService     *gateway.Service
	gatewayServiceOnce sync.Once
)

func (k *Kernel) InjectGatewayService() *gateway.Service {
	gatewayServiceOnce.Do(func() {
		gatewayService = gateway.NewService(
			k.InjectTransportService(),
			k.env.Site,
		)
	})

	return gatewayService
}

var (
	wanService     *wan.Service
	wanServiceOnce sync.Once
)

func (k *Kernel) InjectWanService() *wan.Service {
	wanServiceOnce.Do(func() {
		wanService = wan.NewService()
	})

	return wanService
}

var (
	snapshotService     *snapshot.Service
	snapshotServiceOnce sync.Once
)

func (k *Kernel) InjectSnapshotService() *snapshot.Service {
	snapshotServiceOnce.Do(func() {
		snapshotService = snapshot.NewService()
	})

	return snapshotService
}

var (
	storeService     *store.Service
	storeServiceOnce sync.Once
)

func (k *Kernel) InjectStoreService() *store.Service {
	storeServiceOnce.Do(func() {
		storeService = store.NewService(k.DB)
	})

	return storeService
}

var (
	dumpStatService     *dumpstat.Service
	dumpStatServiceOnce sync.Once
)

func (k *Kernel) InjectDumpStatService() *dumpstat.Service {
	dumpStatServiceOnce.Do(func() {
		dumpStatService = dumpstat.NewService()
	})

	return dumpStatService
}

var (
	pollerService     *poller.Service
	pollerServiceOnce sync.Once
)

func (k *Kernel) InjectPollerService() *poller.Service {
	pollerServiceOnce.Do(func() {
		pollerService = poller.NewService(
			k.InjectGatewayService(),
			k.InjectWanService(),
			k.InjectSnapshotService(),
			k.InjectStoreService(),
			k.InjectDumpStatService(),
			k.env.PollInterval,
			k.env.FailureThreshold,
		)
	})

	return pollerService
}
