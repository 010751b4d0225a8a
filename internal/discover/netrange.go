package discover

import (
	"fmt"
	"net"
)

// DetectLocalNetwork returns the CIDR of the primary local IPv4 network.
// It prefers the first non-loopback interface that is up and carries an
// IPv4 address; if interface enumeration yields nothing it falls back to
// the address a UDP socket would source from, assumed to sit in a /24.
func DetectLocalNetwork() (string, error) {
	if cidr := detectFromInterfaces(); cidr != "" {
		return cidr, nil
	}
	return detectFromRoute()
}

func detectFromInterfaces() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}

	for i := range ifaces {
		iface := &ifaces[i]
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipNet.IP.To4()
			if ip == nil {
				continue
			}
			ones, _ := ipNet.Mask.Size()
			return fmt.Sprintf("%s/%d", ip.Mask(ipNet.Mask), ones)
		}
	}
	return ""
}

// detectFromRoute learns the outbound source address without sending any
// packets; UDP "connect" only consults the routing table.
func detectFromRoute() (string, error) {
	conn, err := net.Dial("udp4", "8.8.8.8:80")
	if err != nil {
		return "", fmt.Errorf("detect local network: %w", err)
	}
	defer conn.Close()

	local, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || local.IP.To4() == nil {
		return "", fmt.Errorf("detect local network: no IPv4 source address")
	}

	ip := local.IP.To4()
	mask := net.CIDRMask(24, 32)
	return fmt.Sprintf("%s/24", ip.Mask(mask)), nil
}

// expandHosts returns every usable host address in a subnet as a string
// slice. Network and broadcast addresses are excluded, except for /31
// (both addresses are hosts) and /32 (the single address). Subnets wider
// than /16 return nil to keep accidental scans bounded.
func expandHosts(subnet *net.IPNet) []string {
	ones, bits := subnet.Mask.Size()
	if ones == 0 && bits == 0 {
		return nil
	}

	hostBits := bits - ones
	if hostBits > 16 {
		return nil
	}

	// Point-to-point and single-host ranges have no network/broadcast
	// addresses to exclude.
	if hostBits <= 1 {
		hosts := []string{subnet.IP.String()}
		if hostBits == 1 {
			hosts = append(hosts, incrementIP(subnet.IP, 1).String())
		}
		return hosts
	}

	total := 1 << hostBits
	hosts := make([]string, 0, total-2)
	for i := 1; i < total-1; i++ {
		next := incrementIP(subnet.IP, i)
		if next != nil && subnet.Contains(next) {
			hosts = append(hosts, next.String())
		}
	}
	return hosts
}

// incrementIP adds offset to a base IPv4 address.
func incrementIP(base net.IP, offset int) net.IP {
	ip := make(net.IP, len(base))
	copy(ip, base)

	ip = ip.To4()
	if ip == nil {
		return nil
	}

	carry := offset
	for i := 3; i >= 0; i-- {
		val := int(ip[i]) + carry
		ip[i] = byte(val % 256)
		carry = val / 256
		if carry == 0 {
			break
		}
	}
	return ip
}
