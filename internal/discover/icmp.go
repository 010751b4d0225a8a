package discover

import (
	"context"
	"runtime"
	"sync"

	probing "github.com/prometheus-community/pro-bing"
	"go.uber.org/zap"
)

// PingPrefilter narrows a host list to hosts that answer ICMP before any
// TCP probing happens. It is opt-in: silent conferencing gear behind a
// firewall that drops ICMP would otherwise be missed.
type PingPrefilter struct {
	cfg    Config
	logger *zap.Logger
}

// NewPingPrefilter creates an ICMP prefilter from the sweep configuration.
func NewPingPrefilter(cfg Config, logger *zap.Logger) *PingPrefilter {
	return &PingPrefilter{cfg: cfg.withDefaults(), logger: logger}
}

// Filter pings all hosts concurrently and returns the subset that
// responded, in the original order. A ping error counts as unresponsive.
func (f *PingPrefilter) Filter(ctx context.Context, hosts []string) []string {
	if len(hosts) == 0 {
		return nil
	}

	privileged := runtime.GOOS == "windows"

	sem := make(chan struct{}, f.cfg.Concurrency)
	var mu sync.Mutex
	alive := make(map[string]bool, len(hosts))

	var wg sync.WaitGroup
loop:
	for _, ip := range hosts {
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(ip string) {
			defer wg.Done()
			defer func() { <-sem }()

			if f.pingHost(ctx, ip, privileged) {
				mu.Lock()
				alive[ip] = true
				mu.Unlock()
			}
		}(ip)
	}
	wg.Wait()

	live := make([]string, 0, len(alive))
	for _, ip := range hosts {
		if alive[ip] {
			live = append(live, ip)
		}
	}
	f.logger.Info("ping prefilter complete",
		zap.Int("hosts", len(hosts)),
		zap.Int("alive", len(live)),
	)
	return live
}

func (f *PingPrefilter) pingHost(ctx context.Context, ip string, privileged bool) bool {
	pinger, err := probing.NewPinger(ip)
	if err != nil {
		f.logger.Debug("failed to create pinger", zap.String("ip", ip), zap.Error(err))
		return false
	}

	pinger.Count = f.cfg.PingCount
	pinger.Timeout = f.cfg.PingTimeout
	pinger.SetPrivileged(privileged)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if runErr := pinger.Run(); runErr != nil {
			f.logger.Debug("ping failed", zap.String("ip", ip), zap.Error(runErr))
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		pinger.Stop()
		<-done
	}

	return pinger.Statistics().PacketsRecv > 0
}
