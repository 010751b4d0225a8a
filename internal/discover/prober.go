package discover

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/roomscout/roomscout/pkg/models"
)

// bodyKeywords mark a web response as coming from conferencing hardware.
var bodyKeywords = []string{"cisco", "polycom", "tandberg", "webex", "room", "codec"}

// hostnameKeywords additionally accept names like conf-room-meeting-3.
var hostnameKeywords = []string{"cisco", "polycom", "tandberg", "webex", "room", "meeting", "codec"}

// ProbeOptions tune a single host probe.
type ProbeOptions struct {
	// Force classifies the host as a video endpoint regardless of what the
	// heuristic finds, as long as at least one port answered.
	Force bool
	// Credentials are used for the authenticated web fetch in the
	// classification heuristic.
	Credentials models.Credentials
}

// Prober performs TCP connect probes against a single host and applies the
// video endpoint classification heuristic.
type Prober struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewProber creates a prober. When cfg.ProbeRate is positive, connect
// attempts across all hosts share a token bucket at that rate.
func NewProber(cfg Config, logger *zap.Logger) *Prober {
	cfg = cfg.withDefaults()

	limit := rate.Inf
	if cfg.ProbeRate > 0 {
		limit = rate.Limit(cfg.ProbeRate)
	}

	return &Prober{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.HTTPTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// Probe checks which of the given ports are open on ip and, if any are,
// returns an endpoint record with a resolved hostname and a tentative type.
// A silent host yields nil — forced or not.
func (p *Prober) Probe(ctx context.Context, ip string, ports []int, opts ProbeOptions) *models.Endpoint {
	if len(ports) == 0 {
		ports = p.cfg.Ports
	}

	var open []int
	for _, port := range ports {
		if ctx.Err() != nil {
			break
		}
		if err := p.limiter.Wait(ctx); err != nil {
			break
		}
		if p.isPortOpen(ctx, ip, port) {
			open = append(open, port)
		}
	}

	if len(open) == 0 {
		return nil
	}

	hostname := p.resolveHostname(ip)

	endpointType := models.EndpointTypeUnknown
	if opts.Force || p.classify(ctx, ip, hostname, open, opts.Credentials) {
		endpointType = models.EndpointTypeVideo
	}

	p.logger.Debug("host probe complete",
		zap.String("ip", ip),
		zap.Ints("open", open),
		zap.String("type", string(endpointType)),
	)

	return &models.Endpoint{
		IP:        ip,
		Hostname:  hostname,
		OpenPorts: open,
		Type:      endpointType,
		Name:      "Device at " + hostname,
	}
}

// isPortOpen attempts a single TCP connection to the given port.
func (p *Prober) isPortOpen(ctx context.Context, ip string, port int) bool {
	addr := net.JoinHostPort(ip, strconv.Itoa(port))
	d := net.Dialer{Timeout: p.cfg.ProbeTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// resolveHostname performs a bounded reverse DNS lookup. The IP itself is
// the fallback; this never fails.
func (p *Prober) resolveHostname(ip string) string {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.DNSTimeout)
	defer cancel()

	names, err := net.DefaultResolver.LookupAddr(ctx, ip)
	if err != nil || len(names) == 0 {
		return ip
	}
	return strings.TrimSuffix(names[0], ".")
}

// classify decides whether a host with open ports is a video endpoint.
// Rules are tried in order and short-circuit on the first match:
// SIP/H.323 port presence, then web content keywords, then hostname
// keywords.
func (p *Prober) classify(ctx context.Context, ip, hostname string, open []int, creds models.Credentials) bool {
	portSet := make(map[int]bool, len(open))
	for _, port := range open {
		portSet[port] = true
	}

	// Call signaling ports are the strongest indicator.
	if portSet[5060] || portSet[5061] || portSet[1720] {
		return true
	}

	if portSet[80] || portSet[443] {
		if portSet[80] && p.webLooksLikeEndpoint(ctx, "http://"+ip, creds) {
			return true
		}
		if portSet[443] && p.webLooksLikeEndpoint(ctx, "https://"+ip, creds) {
			return true
		}
		if containsAny(strings.ToLower(hostname), hostnameKeywords) {
			return true
		}
	}

	return false
}

// webLooksLikeEndpoint fetches a device's web root with the supplied
// credentials and sniffs the body for conferencing keywords. Any failure
// simply means "no".
func (p *Prober) webLooksLikeEndpoint(ctx context.Context, url string, creds models.Credentials) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	req.SetBasicAuth(creds.Username, creds.Password)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("heuristic web fetch failed", zap.String("url", url), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return false
	}
	return containsAny(strings.ToLower(string(body)), bodyKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
