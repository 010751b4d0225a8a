package discover

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/roomscout/roomscout/pkg/models"
)

// Extractor enriches a probed endpoint with vendor details. The returned
// record must be a new value; the input is never mutated.
type Extractor interface {
	Extract(ctx context.Context, e *models.Endpoint, creds models.Credentials) (*models.Endpoint, error)
}

// defaultCapabilities is assumed for any device that made it through
// classification; every supported codec does at least audio and video.
var defaultCapabilities = []string{"video", "audio"}

// Classifier fans probed endpoints out to a pool of extraction workers
// and collects the enriched records. Extraction failures never drop a
// device: the probe-time record is emitted instead.
type Classifier struct {
	extractor Extractor
	workers   int
	logger    *zap.Logger
}

// NewClassifier creates a classifier. workers <= 0 selects the default
// pool size.
func NewClassifier(extractor Extractor, workers int, logger *zap.Logger) *Classifier {
	if workers <= 0 {
		workers = DefaultConfig().Workers
	}
	return &Classifier{extractor: extractor, workers: workers, logger: logger}
}

// Classify enriches every endpoint concurrently and returns exactly one
// record per input. Order is not preserved.
func (c *Classifier) Classify(ctx context.Context, endpoints []*models.Endpoint, creds models.Credentials) []*models.Endpoint {
	if len(endpoints) == 0 {
		return nil
	}

	jobs := make(chan *models.Endpoint)
	results := make(chan *models.Endpoint, len(endpoints))

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for e := range jobs {
				results <- c.classifyOne(ctx, e, creds)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, e := range endpoints {
			select {
			case jobs <- e:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]*models.Endpoint, 0, len(endpoints))
	for e := range results {
		out = append(out, e)
	}
	return out
}

func (c *Classifier) classifyOne(ctx context.Context, original *models.Endpoint, creds models.Credentials) *models.Endpoint {
	e := reclassifyByPorts(original)

	start := time.Now()
	enriched, err := c.extractor.Extract(ctx, e, creds)
	extractDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		classifyFailuresTotal.Inc()
		c.logger.Warn("detail extraction failed, keeping probe record",
			zap.String("ip", e.IP),
			zap.Error(err),
		)
		enriched = e.Clone()
	}

	backfill(enriched, e)
	applyDefaults(enriched)
	return enriched
}

// reclassifyByPorts upgrades an unknown device with an HTTPS management
// interface to a video endpoint candidate so extraction gets a chance to
// identify it.
func reclassifyByPorts(e *models.Endpoint) *models.Endpoint {
	if e.Type != models.EndpointTypeUnknown || !e.HasPort(443) {
		return e
	}
	upgraded := e.Clone()
	upgraded.Type = models.EndpointTypeVideo
	return upgraded
}

// backfill copies the identity fields of the probe record into the
// enriched one wherever extraction left them empty.
func backfill(dst, src *models.Endpoint) {
	if dst.Name == "" {
		dst.Name = src.Name
	}
	if dst.Hostname == "" {
		dst.Hostname = src.Hostname
	}
	if dst.IP == "" {
		dst.IP = src.IP
	}
	if len(dst.OpenPorts) == 0 {
		dst.OpenPorts = append([]int(nil), src.OpenPorts...)
	}
	if dst.Type == "" {
		dst.Type = src.Type
	}
}

func applyDefaults(e *models.Endpoint) {
	if e.Status == "" {
		e.Status = "online"
	}
	if len(e.Capabilities) == 0 {
		e.Capabilities = append([]string(nil), defaultCapabilities...)
	}
}
