package discover

import (
	"context"
	"net"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/roomscout/roomscout/pkg/models"
)

func testSweepConfig(ports ...int) Config {
	cfg := DefaultConfig()
	cfg.Ports = ports
	cfg.ProbeTimeout = 200 * time.Millisecond
	cfg.HTTPTimeout = 500 * time.Millisecond
	return cfg
}

func TestSweepInvalidRange(t *testing.T) {
	s := NewSweeper(DefaultConfig(), zap.NewNop())
	if _, err := s.Sweep(context.Background(), "not-a-network", SweepOptions{}); err == nil {
		t.Error("expected error for invalid range")
	}
	if _, err := s.Sweep(context.Background(), "300.0.0.1/24", SweepOptions{}); err == nil {
		t.Error("expected error for out-of-range octets")
	}
}

func TestSweepSilentSubnet(t *testing.T) {
	ln, port := listenTCP(t)
	ln.Close()

	s := NewSweeper(testSweepConfig(port), zap.NewNop())
	endpoints, err := s.Sweep(context.Background(), "127.0.0.1/32", SweepOptions{})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(endpoints) != 0 {
		t.Errorf("expected no endpoints, got %d", len(endpoints))
	}
}

func TestSweepFirstPassFiltersNonSIPHosts(t *testing.T) {
	// A host listening only on a non-signaling port never reaches the
	// second pass, so it is absent from the results.
	_, port := listenTCP(t)

	s := NewSweeper(testSweepConfig(port), zap.NewNop())
	endpoints, err := s.Sweep(context.Background(), "127.0.0.1/32", SweepOptions{})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(endpoints) != 0 {
		t.Errorf("non-SIP host leaked through the first pass: %+v", endpoints)
	}
}

func TestSweepForcedHostSkipsFirstPass(t *testing.T) {
	_, port := listenTCP(t)

	s := NewSweeper(testSweepConfig(port), zap.NewNop())
	endpoints, err := s.Sweep(context.Background(), "127.0.0.1/32", SweepOptions{
		ForcedIPs: []string{"127.0.0.1"},
	})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(endpoints) != 1 {
		t.Fatalf("expected forced host in results, got %d", len(endpoints))
	}
	e := endpoints[0]
	if e.Type != models.EndpointTypeVideo {
		t.Errorf("forced host type = %s, want video_endpoint", e.Type)
	}
	if len(e.OpenPorts) != 1 || e.OpenPorts[0] != port {
		t.Errorf("OpenPorts = %v, want [%d]", e.OpenPorts, port)
	}
}

func TestSweepForcedSilentHostExcluded(t *testing.T) {
	ln, port := listenTCP(t)
	ln.Close()

	s := NewSweeper(testSweepConfig(port), zap.NewNop())
	endpoints, err := s.Sweep(context.Background(), "127.0.0.1/32", SweepOptions{
		ForcedIPs: []string{"127.0.0.1"},
	})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(endpoints) != 0 {
		t.Errorf("forced host with no open ports must be excluded, got %+v", endpoints)
	}
}

func TestSweepSIPResponderFullScan(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:5060")
	if err != nil {
		t.Skipf("cannot bind SIP port on loopback: %v", err)
	}
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	cfg := testSweepConfig(5060)
	s := NewSweeper(cfg, zap.NewNop())
	endpoints, err := s.Sweep(context.Background(), "127.0.0.1/32", SweepOptions{})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(endpoints) != 1 {
		t.Fatalf("expected the SIP responder in results, got %d", len(endpoints))
	}
	if endpoints[0].Type != models.EndpointTypeVideo {
		t.Errorf("SIP responder type = %s, want video_endpoint", endpoints[0].Type)
	}
	if !endpoints[0].HasPort(5060) {
		t.Errorf("OpenPorts = %v, want 5060 present", endpoints[0].OpenPorts)
	}
}

func TestCompact(t *testing.T) {
	a := &models.Endpoint{IP: "10.0.0.1"}
	b := &models.Endpoint{IP: "10.0.0.2"}
	got := compact([]*models.Endpoint{nil, a, nil, b, nil})
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("compact = %v", got)
	}
}
