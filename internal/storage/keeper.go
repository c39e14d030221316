package storage

import (
	"shorecrew/internal/providers"
	"shorecrew/internal/services"
	"shorecrew/internal/storage/interfaces"
	"shorecrew/internal/structures"
	"sync"
	"time"

	"github.com/roylee0704/gron"
	"go.uber.org/atomic"
)

// Cached view keys invalidated on every mutation.
const (
	CacheKeyCrew   = "list:crew"
	CacheKeyEvents = "list:events"
)

// Keeper is the roster's mutation hook: after every add/remove it rewrites
// the persistence slot, drops the cached list views and records the write.
// It also runs an optional periodic safety-net save and handles the
// restore-at-startup / persist-at-shutdown lifecycle.
type Keeper struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.RosterServiceInterface
	fileManager *FileManager
	cache       providers.CacheProviderInterface
	metrics     providers.MetricsProviderInterface
	cron        *gron.Cron
	opsMu       sync.Mutex
	lastPersist atomic.Int64
}

func (k *Keeper) OnMutation() error {
	k.opsMu.Lock()
	defer k.opsMu.Unlock()

	start := time.Now()
	if err := k.fileManager.SaveToFile(k.config.Persistence.FilePath); err != nil {
		k.logger.Errorf(providers.TypeApp, "Error while persisting roster: %s", err)
		return err
	}
	k.metrics.ObservePersistenceDuration(time.Since(start))
	k.lastPersist.Store(start.Unix())

	k.cache.Del(CacheKeyCrew)
	k.cache.Del(CacheKeyEvents)
	return nil
}

func (k *Keeper) Init() {
	interval := k.config.Persistence.SaveInterval
	if interval <= 0 {
		return
	}

	k.cron = gron.New()
	k.cron.AddFunc(gron.Every(interval), func() {
		if err := k.Persist(); err != nil {
			return
		}
		k.logger.Infof(providers.TypeApp, "Safety-net save to %s", k.config.Persistence.FilePath)
	})
	k.cron.Start()
}

func (k *Keeper) Stop() {
	if k.cron != nil {
		k.cron.Stop()
	}
}

func (k *Keeper) Restore() error {
	return k.fileManager.LoadFromFile(k.config.Persistence.FilePath)
}

func (k *Keeper) Persist() error {
	k.opsMu.Lock()
	defer k.opsMu.Unlock()

	err := k.fileManager.SaveToFile(k.config.Persistence.FilePath)
	if err != nil {
		k.logger.Errorf(providers.TypeApp, "Error while persisting roster: %s", err)
		return err
	}
	k.lastPersist.Store(time.Now().Unix())
	return nil
}

func (k *Keeper) LastPersist() time.Time {
	ts := k.lastPersist.Load()
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// NewKeeper wires itself into the roster service as its mutation hook.
func NewKeeper(config *structures.Config, logger providers.Logger, service services.RosterServiceInterface, fileManager *FileManager, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) interfaces.KeeperInterface {
	k := &Keeper{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
		cache:       cache,
		metrics:     metrics,
	}
	service.SetMutationHook(k)
	return k
}
