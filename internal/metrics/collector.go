package metrics

import (
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Build information, overridden with -ldflags at release time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// SystemCollector refreshes the process gauges on a fixed interval.
type SystemCollector struct {
	metrics   *Metrics
	logger    *zap.Logger
	startTime time.Time
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func NewSystemCollector(metrics *Metrics, logger *zap.Logger) *SystemCollector {
	return &SystemCollector{
		metrics:   metrics,
		logger:    logger,
		startTime: time.Now(),
		stopCh:    make(chan struct{}),
	}
}

func (sc *SystemCollector) Start(interval time.Duration) {
	sc.metrics.SetServiceVersion(Version, Commit, BuildDate)

	ticker := time.NewTicker(interval)
	sc.wg.Add(1)
	go func() {
		defer sc.wg.Done()
		defer ticker.Stop()

		sc.Collect()
		for {
			select {
			case <-ticker.C:
				sc.Collect()
			case <-sc.stopCh:
				return
			}
		}
	}()

	sc.logger.Info("System metrics collector started", zap.Duration("interval", interval))
}

// Stop is safe to call more than once.
func (sc *SystemCollector) Stop() {
	sc.stopOnce.Do(func() {
		close(sc.stopCh)
		sc.wg.Wait()
		sc.logger.Info("System metrics collector stopped")
	})
}

func (sc *SystemCollector) Collect() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	sc.metrics.UpdateSystemMetrics(time.Since(sc.startTime), &memStats)
}
