package discover

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roomscout/roomscout/pkg/models"
)

// SweepOptions tune a single subnet sweep.
type SweepOptions struct {
	// Credentials are passed through to the probe heuristic.
	Credentials models.Credentials
	// ForcedIPs are treated as video endpoints whenever they answer on any
	// port. They skip the first-pass filter and are always fully probed.
	ForcedIPs []string
}

// Sweeper walks a subnet in two passes: a cheap SIP-only pass over every
// host, then a full port scan of just the hosts that answered. Conferencing
// codecs always expose SIP, so the first pass discards the bulk of a subnet
// with two connection attempts per host.
type Sweeper struct {
	cfg       Config
	prober    *Prober
	prefilter *PingPrefilter
	logger    *zap.Logger
}

// NewSweeper creates a sweeper with its own prober.
func NewSweeper(cfg Config, logger *zap.Logger) *Sweeper {
	cfg = cfg.withDefaults()
	s := &Sweeper{
		cfg:    cfg,
		prober: NewProber(cfg, logger),
		logger: logger,
	}
	if cfg.PingPrefilter {
		s.prefilter = NewPingPrefilter(cfg, logger)
	}
	return s
}

// Sweep probes every host in the CIDR and returns a record for each host
// with at least one open port. An unparsable CIDR is an error; a subnet
// with nothing listening returns an empty slice.
func (s *Sweeper) Sweep(ctx context.Context, cidr string, opts SweepOptions) ([]*models.Endpoint, error) {
	_, subnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("parse network range %q: %w", cidr, err)
	}

	scanID := uuid.New().String()
	start := time.Now()

	hosts := expandHosts(subnet)
	s.logger.Info("starting sweep",
		zap.String("scan_id", scanID),
		zap.String("subnet", subnet.String()),
		zap.Int("hosts", len(hosts)),
		zap.Int("forced", len(opts.ForcedIPs)),
	)

	if s.prefilter != nil {
		hosts = s.prefilter.Filter(ctx, hosts)
	}

	forced := make(map[string]bool, len(opts.ForcedIPs))
	var forcedIPs []string
	for _, ip := range opts.ForcedIPs {
		if !forced[ip] {
			forced[ip] = true
			forcedIPs = append(forcedIPs, ip)
		}
	}

	// First pass: SIP ports only, forced hosts excluded.
	var firstPass []string
	for _, ip := range hosts {
		if !forced[ip] {
			firstPass = append(firstPass, ip)
		}
	}
	responders := s.probeAll(ctx, firstPass, sipPorts, ProbeOptions{Credentials: opts.Credentials}, "sip_filter")

	// Second pass: full port set on responders plus every forced host.
	candidates := make([]string, 0, len(responders)+len(forcedIPs))
	for _, e := range responders {
		candidates = append(candidates, e.IP)
	}
	candidates = append(candidates, forcedIPs...)

	var endpoints []*models.Endpoint
	for _, e := range s.probeAll(ctx, candidates, s.cfg.Ports, ProbeOptions{Credentials: opts.Credentials}, "full") {
		if forced[e.IP] {
			e.Type = models.EndpointTypeVideo
		}
		endpointsFoundTotal.WithLabelValues(string(e.Type)).Inc()
		endpoints = append(endpoints, e)
	}

	sweepDuration.Observe(time.Since(start).Seconds())
	s.logger.Info("sweep complete",
		zap.String("scan_id", scanID),
		zap.Int("responders", len(responders)),
		zap.Int("endpoints", len(endpoints)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return endpoints, nil
}

// probeAll fans host probes out over a bounded pool and collects the
// non-nil results in host order.
func (s *Sweeper) probeAll(ctx context.Context, hosts []string, ports []int, opts ProbeOptions, phase string) []*models.Endpoint {
	if len(hosts) == 0 {
		return nil
	}

	sem := make(chan struct{}, s.cfg.Concurrency)
	results := make([]*models.Endpoint, len(hosts))

	var wg sync.WaitGroup
	for i, ip := range hosts {
		select {
		case <-ctx.Done():
			wg.Wait()
			return compact(results)
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, ip string) {
			defer wg.Done()
			defer func() { <-sem }()

			hostsProbedTotal.WithLabelValues(phase).Inc()
			results[i] = s.prober.Probe(ctx, ip, ports, opts)
		}(i, ip)
	}
	wg.Wait()

	return compact(results)
}

func compact(endpoints []*models.Endpoint) []*models.Endpoint {
	out := make([]*models.Endpoint, 0, len(endpoints))
	for _, e := range endpoints {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
