// Package extract fetches vendor web and API surfaces of a discovered host
// and turns them into an enriched endpoint record. All network failures
// degrade to partial records; nothing here aborts a scan.
package extract

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/roomscout/roomscout/internal/apicache"
	"github.com/roomscout/roomscout/internal/vendors"
	"github.com/roomscout/roomscout/pkg/models"
)

// maxBodySize caps how much of a device response is read. Embedded web UIs
// are small; anything larger is not a codec landing page.
const maxBodySize = 2 << 20

// Extractor queries a host's web root and vendor APIs for device details.
type Extractor struct {
	client   *http.Client
	cache    *apicache.Cache
	rotation []models.Credentials
	logger   *zap.Logger
}

// DefaultRotation is the ordered list of common factory-default credential
// pairs tried when the primary pair yields no vendor information.
var DefaultRotation = []models.Credentials{
	{Username: "admin", Password: "TANDBERG"},
	{Username: "admin", Password: "admin"},
	{Username: "admin", Password: ""},
	{Username: "admin", Password: "POLYCOM"},
	{Username: "admin", Password: "cisco"},
}

// New creates an extractor. Device certificates are self-signed as a rule,
// so TLS verification is disabled. cache may be nil to skip API path
// caching; rotation may be nil to disable credential rotation.
func New(timeout time.Duration, cache *apicache.Cache, rotation []models.Credentials, logger *zap.Logger) *Extractor {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Extractor{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		cache:    cache,
		rotation: rotation,
		logger:   logger,
	}
}

// EndpointURI derives the management URI for an endpoint from its open
// ports: HTTPS when 443 answered, HTTP when only 80 did, and HTTP as the
// safe default when neither is known.
func EndpointURI(e *models.Endpoint) string {
	switch {
	case e.HasPort(443):
		return "https://" + e.IP
	case e.HasPort(80):
		return "http://" + e.IP
	default:
		return "http://" + e.IP
	}
}

// Extract returns an enriched copy of the endpoint. The input is never
// mutated. Fields that cannot be determined keep their defaults
// (manufacturer/model/sw_version "Unknown"); extraction is idempotent for
// unchanged device state.
func (x *Extractor) Extract(ctx context.Context, endpoint *models.Endpoint, creds models.Credentials) (*models.Endpoint, error) {
	if endpoint == nil || endpoint.IP == "" {
		return nil, fmt.Errorf("endpoint without IP")
	}

	e := endpoint.Clone()
	if e.Hostname == "" {
		e.Hostname = e.IP
	}
	if e.Manufacturer == "" {
		e.Manufacturer = models.ManufacturerUnknown
	}
	if e.Model == "" {
		e.Model = models.ManufacturerUnknown
	}
	if e.SoftwareVersion == "" {
		e.SoftwareVersion = models.ManufacturerUnknown
	}
	if e.URI == "" {
		e.URI = EndpointURI(e)
	}
	if e.Name == "" {
		e.Name = "Device at " + e.Hostname
	}

	// Only video endpoints are worth interrogating further.
	if e.Type != models.EndpointTypeVideo {
		return e, nil
	}

	if body, status, err := x.get(ctx, e.URI, creds, ""); err != nil {
		x.logger.Debug("web root fetch failed",
			zap.String("ip", e.IP), zap.Error(err))
	} else if status == http.StatusOK {
		x.dispatchParser(string(body)).ApplyTo(e)
	}

	if e.Manufacturer == models.ManufacturerPolycom {
		if d, path := x.polycomAPIDetails(ctx, e, creds); d.Informative() {
			d.ApplyTo(e)
			if x.cache != nil {
				x.cache.Record(models.ManufacturerPolycom, e.Model, path)
			}
		}
	}

	// The Cisco XML API fills in fields the HTML never carries (serial,
	// MAC, SIP registration, cameras). An unidentified device with HTTPS
	// open is probed too; Cisco codecs often hide the vendor from their
	// login page.
	if e.Manufacturer == models.ManufacturerCisco ||
		(e.Manufacturer == models.ManufacturerUnknown && e.HasPort(443)) {
		if d := x.ciscoXMLDetails(ctx, e, creds); d.Informative() {
			d.ApplyTo(e)
		}
	}

	if e.Identified() {
		e.Name = fmt.Sprintf("%s %s at %s", e.Manufacturer, e.Model, e.Hostname)
	} else {
		e.Name = "Device at " + e.Hostname
	}

	return e, nil
}

// ExtractWithRotation runs Extract with the primary credentials and, when
// the device stays unidentified, retries with each configured fallback pair,
// stopping at the first one that names the device.
func (x *Extractor) ExtractWithRotation(ctx context.Context, endpoint *models.Endpoint, primary models.Credentials) (*models.Endpoint, error) {
	enriched, err := x.Extract(ctx, endpoint, primary)
	if err != nil {
		return nil, err
	}
	if enriched.Identified() || len(x.rotation) == 0 {
		return enriched, nil
	}

	for _, creds := range x.rotation {
		if creds == primary {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		retry, err := x.Extract(ctx, endpoint, creds)
		if err != nil {
			continue
		}
		if retry.Identified() {
			x.logger.Debug("credential rotation identified endpoint",
				zap.String("ip", endpoint.IP),
				zap.String("username", creds.Username),
			)
			return retry, nil
		}
	}

	return enriched, nil
}

// dispatchParser sniffs the body for vendor signatures in priority order and
// hands it to the matching parser.
func (x *Extractor) dispatchParser(body string) vendors.Details {
	lower := strings.ToLower(body)
	switch {
	case strings.Contains(lower, "cisco") || strings.Contains(lower, "webex"):
		return vendors.ParseCiscoHTML(body)
	case strings.Contains(lower, "polycom") || strings.Contains(lower, "realpresence"):
		return vendors.ParsePolycomHTML(body)
	case strings.Contains(lower, "tandberg"):
		return vendors.ParseTandbergHTML(body)
	default:
		return vendors.ParseGenericHTML(body)
	}
}

// ciscoXMLDetails fetches status.xml and config.xml and merges whatever both
// documents yield. The combined result is informative only if it carries
// more than the manufacturer; otherwise the API is treated as absent.
func (x *Extractor) ciscoXMLDetails(ctx context.Context, e *models.Endpoint, creds models.Credentials) vendors.Details {
	base := e.URI
	combined := vendors.Details{Manufacturer: models.ManufacturerCisco}

	if body, status, err := x.get(ctx, base+"/status.xml", creds, ""); err == nil && status == http.StatusOK {
		combined.Merge(vendors.ParseCiscoStatusXML(body))
	} else if err != nil {
		x.logger.Debug("status.xml fetch failed", zap.String("ip", e.IP), zap.Error(err))
	}

	if body, status, err := x.get(ctx, base+"/config.xml", creds, ""); err == nil && status == http.StatusOK {
		combined.Merge(vendors.ParseCiscoConfigXML(body))
	} else if err != nil {
		x.logger.Debug("config.xml fetch failed", zap.String("ip", e.IP), zap.Error(err))
	}

	return combined
}

// polycomAPIDetails walks the Polycom management paths (cached path first)
// and returns the first informative result together with the path that
// produced it.
func (x *Extractor) polycomAPIDetails(ctx context.Context, e *models.Endpoint, creds models.Credentials) (vendors.Details, string) {
	paths := vendors.PolycomAPIPaths
	if x.cache != nil {
		paths = x.cache.Reorder(models.ManufacturerPolycom, e.Model, paths)
	}

	base := e.URI
	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		body, status, err := x.get(ctx, base+path, creds, "application/json")
		if err != nil || status != http.StatusOK {
			continue
		}

		d, isJSON := vendors.ParsePolycomJSON(body)
		if !isJSON && strings.HasSuffix(path, ".xml") {
			d = vendors.ParseVendorXML(body)
			d.Manufacturer = models.ManufacturerPolycom
		}
		if d.Model != "" {
			return d, path
		}
	}

	return vendors.Details{}, ""
}

// get performs a single authenticated GET. The response body is returned for
// 2xx through 4xx alike; callers check the status code.
func (x *Extractor) get(ctx context.Context, url string, creds models.Credentials, accept string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request %s: %w", url, err)
	}
	req.SetBasicAuth(creds.Username, creds.Password)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := x.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read %s: %w", url, err)
	}
	return body, resp.StatusCode, nil
}
