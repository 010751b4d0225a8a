package discover

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"

	"github.com/roomscout/roomscout/pkg/models"
)

// FindOptions tune an endpoint search.
type FindOptions struct {
	// IncludeDetails runs vendor extraction on every match. When false the
	// results carry only probe-time identity (IP, name, type).
	IncludeDetails bool
	// ForcedIPs are classified as video endpoints whenever they respond.
	ForcedIPs []string
	// Credentials for both the probe heuristic and vendor extraction.
	Credentials models.Credentials
}

// Service ties the sweeper and classifier together behind the two
// operations callers actually want: find everything, or drill into one
// address.
type Service struct {
	sweeper    *Sweeper
	classifier *Classifier
	logger     *zap.Logger
}

// NewService wires a discovery service from the sweep configuration and a
// detail extractor.
func NewService(cfg Config, extractor Extractor, logger *zap.Logger) *Service {
	cfg = cfg.withDefaults()
	return &Service{
		sweeper:    NewSweeper(cfg, logger),
		classifier: NewClassifier(extractor, cfg.Workers, logger),
		logger:     logger,
	}
}

// FindEndpoints sweeps the CIDR and returns only the devices classified as
// video endpoints. An empty cidr auto-detects the local network.
func (s *Service) FindEndpoints(ctx context.Context, cidr string, opts FindOptions) ([]*models.Endpoint, error) {
	if cidr == "" {
		detected, err := DetectLocalNetwork()
		if err != nil {
			return nil, fmt.Errorf("no network range given: %w", err)
		}
		s.logger.Info("auto-detected network range", zap.String("cidr", detected))
		cidr = detected
	}

	devices, err := s.sweeper.Sweep(ctx, cidr, SweepOptions{
		Credentials: opts.Credentials,
		ForcedIPs:   opts.ForcedIPs,
	})
	if err != nil {
		return nil, err
	}

	if opts.IncludeDetails {
		devices = s.classifier.Classify(ctx, devices, opts.Credentials)
	}

	endpoints := make([]*models.Endpoint, 0, len(devices))
	for _, d := range devices {
		if d.Type != models.EndpointTypeVideo {
			continue
		}
		if !opts.IncludeDetails {
			// Basic projection: identity only.
			d = &models.Endpoint{IP: d.IP, Name: d.Name, Type: d.Type}
		}
		endpoints = append(endpoints, d)
	}
	return endpoints, nil
}

// EndpointDetails probes a single address with the full port set and, if
// it turns out to be a video endpoint, extracts full vendor details. A
// silent address returns nil with no error; a responsive non-video device
// comes back with its probe record only. The SIP-first filtering of a
// subnet sweep does not apply here.
func (s *Service) EndpointDetails(ctx context.Context, ip string, creds models.Credentials) (*models.Endpoint, error) {
	if net.ParseIP(ip) == nil {
		return nil, fmt.Errorf("invalid address %q", ip)
	}

	device := s.sweeper.prober.Probe(ctx, ip, nil, ProbeOptions{Credentials: creds})
	if device == nil {
		return nil, nil
	}
	if device.Type != models.EndpointTypeVideo {
		return device, nil
	}

	enriched := s.classifier.Classify(ctx, []*models.Endpoint{device}, creds)
	if len(enriched) == 0 {
		return device, nil
	}
	return enriched[0], nil
}
