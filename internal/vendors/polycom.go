package vendors

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/roomscout/roomscout/pkg/models"
)

var (
	polycomTitleRe   = regexp.MustCompile(`(?i)<title>(?:Polycom)?\s*(.*?)</title>`)
	polycomSWDivRe   = regexp.MustCompile(`<div class="software-version">(.*?)</div>`)
	polycomSWLabelRe = regexp.MustCompile(`(?i)Software\s+Version\s*:\s*([^<>\n]+)`)
	polycomNameDivRe = regexp.MustCompile(`<div class="system-name">(.*?)</div>`)
	polycomSerialRe  = regexp.MustCompile(`(?i)Serial\s+Number\s*:\s*([^<>\n]+)`)
	polycomMACRe     = regexp.MustCompile(`(?i)MAC\s+Address\s*:\s*([^<>\n]+)`)
	polycomSWTextRe  = regexp.MustCompile(`(?i)Software\s+Version`)
	polycomSerTextRe = regexp.MustCompile(`(?i)Serial\s+Number`)
)

// ParsePolycomHTML extracts model, software version, system name, serial,
// and MAC address from a Polycom endpoint's web root.
func ParsePolycomHTML(content string) Details {
	d := Details{Manufacturer: models.ManufacturerPolycom}

	if m := polycomTitleRe.FindStringSubmatch(content); m != nil {
		d.Model = strings.TrimSpace(m[1])
	}

	if m := polycomSWDivRe.FindStringSubmatch(content); m != nil {
		d.SoftwareVersion = strings.TrimSpace(m[1])
	} else if m := polycomSWLabelRe.FindStringSubmatch(content); m != nil {
		d.SoftwareVersion = strings.TrimSpace(m[1])
	}

	if m := polycomNameDivRe.FindStringSubmatch(content); m != nil {
		d.SystemName = strings.TrimSpace(m[1])
	}
	if m := polycomSerialRe.FindStringSubmatch(content); m != nil {
		d.Serial = strings.TrimSpace(m[1])
	}
	if m := polycomMACRe.FindStringSubmatch(content); m != nil {
		d.MACAddress = strings.TrimSpace(m[1])
	}

	// DOM fallback for layouts where the value sits in the element after
	// the label rather than in the same text run.
	if d.Model == "" || d.SoftwareVersion == "" || d.Serial == "" {
		if doc := parseDOM(content); doc != nil {
			if d.Model == "" {
				if title := domTitle(doc); strings.Contains(title, "Polycom") {
					if model := strings.TrimSpace(strings.ReplaceAll(title, "Polycom", "")); model != "" {
						d.Model = model
					}
				}
			}
			if d.SoftwareVersion == "" {
				for _, parent := range findLabelParents(doc, polycomSWTextRe) {
					if v := siblingText(parent); v != "" {
						d.SoftwareVersion = v
						break
					}
				}
			}
			if d.Serial == "" {
				for _, parent := range findLabelParents(doc, polycomSerTextRe) {
					if v := siblingText(parent); v != "" {
						d.Serial = v
						break
					}
				}
			}
		}
	}

	return d
}

// PolycomAPIPaths are the REST/XML management paths probed on Polycom
// devices, in default trial order. The first path that yields a model wins.
var PolycomAPIPaths = []string{
	"/api/v1/mgmt/device/info", // Modern Poly endpoints
	"/status.xml",              // Some newer Polycom devices
	"/rest/system",             // RealPresence Group series
	"/api/rest/system",         // Alternative API path
}

// polycomPayload covers every known JSON shape returned by the Polycom
// management paths. One decode populates whichever branch the device speaks;
// the branches are then checked in fixed priority order.
type polycomPayload struct {
	Status *struct {
		SystemInfo *struct {
			Product  string `json:"Product"`
			Software *struct {
				Version string `json:"Version"`
			} `json:"Software"`
			SerialNumber string `json:"SerialNumber"`
			Hardware     *struct {
				MAC string `json:"MAC"`
			} `json:"Hardware"`
		} `json:"SystemInfo"`
	} `json:"Status"`

	Device *struct {
		Model   string `json:"model"`
		Version string `json:"version"`
		Serial  string `json:"serial"`
		MAC     string `json:"mac"`
	} `json:"device"`

	SystemInfo *struct {
		Model        string `json:"model"`
		Name         string `json:"name"`
		SoftwareInfo *struct {
			Current *struct {
				Version string `json:"version"`
			} `json:"current"`
		} `json:"softwareInfo"`
		SerialNumber string `json:"serialNumber"`
		HardwareInfo *struct {
			MACAddress string `json:"macAddress"`
		} `json:"hardwareInfo"`
	} `json:"systeminfo"`

	Model           string `json:"model"`
	SoftwareVersion string `json:"softwareVersion"`
	SerialNumber    string `json:"serialNumber"`
	SystemName      string `json:"systemName"`

	System *struct {
		Type    string `json:"type"`
		Version string `json:"version"`
	} `json:"system"`
}

// ParsePolycomJSON maps a JSON management API payload to device details.
// The second return value is false when data is not valid JSON, so the
// caller can fall back to XML parsing.
func ParsePolycomJSON(data []byte) (Details, bool) {
	var payload polycomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Details{}, false
	}

	d := Details{Manufacturer: models.ManufacturerPolycom}

	switch {
	case payload.Status != nil && payload.Status.SystemInfo != nil:
		// RealPresence Group format.
		info := payload.Status.SystemInfo
		d.Model = info.Product
		if info.Software != nil {
			d.SoftwareVersion = info.Software.Version
		}
		d.Serial = info.SerialNumber
		if info.Hardware != nil {
			d.MACAddress = info.Hardware.MAC
		}

	case payload.Device != nil:
		// Modern Poly Studio X format.
		d.Model = payload.Device.Model
		d.SoftwareVersion = payload.Device.Version
		d.Serial = payload.Device.Serial
		d.MACAddress = payload.Device.MAC

	case payload.SystemInfo != nil:
		info := payload.SystemInfo
		d.Model = info.Model
		if d.Model == "" {
			d.Model = info.Name
		}
		if info.SoftwareInfo != nil && info.SoftwareInfo.Current != nil {
			d.SoftwareVersion = info.SoftwareInfo.Current.Version
		}
		d.Serial = info.SerialNumber
		if info.HardwareInfo != nil {
			d.MACAddress = info.HardwareInfo.MACAddress
		}

	case payload.Model != "" && payload.SoftwareVersion != "":
		// Flat structure served by /rest/system on RealPresence Group 300.
		d.Model = payload.Model
		d.SoftwareVersion = payload.SoftwareVersion
		d.Serial = payload.SerialNumber
		d.SystemName = payload.SystemName

	case payload.System != nil:
		d.Model = payload.System.Type
		d.SoftwareVersion = payload.System.Version
	}

	return d, true
}
