package vendors

import (
	"regexp"
	"strings"

	"github.com/roomscout/roomscout/pkg/models"
)

// Markup for the same field varies across Cisco web UI generations, so each
// field is matched against a ladder of patterns ordered from the dedicated
// class markers of current firmware down to the bare paragraph text of the
// oldest models. The first pattern that matches wins.
var (
	ciscoTitleRe = regexp.MustCompile(`(?i)<title>(?:\s*Cisco)?(?:\s*Webex)?\s*(.*?)</title>`)

	ciscoSWVersionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`<span class="sw-version">(.*?)</span>`),
		regexp.MustCompile(`<div class="sw-info">(.*?)</div>`),
		regexp.MustCompile(`(?i)Software Version:?\s*</td>\s*<td[^>]*>(.*?)</td>`),
		regexp.MustCompile(`(?i)<td[^>]*class="[^"]*label[^"]*"[^>]*>\s*Software:?\s*</td>\s*<td[^>]*class="[^"]*value[^"]*"[^>]*>\s*(.*?)\s*</td>`),
		regexp.MustCompile(`(?i)<span[^>]*class="[^"]*info-label[^"]*"[^>]*>\s*Software:?\s*</span>\s*<span[^>]*class="[^"]*info-value[^"]*"[^>]*>\s*(.*?)\s*</span>`),
		regexp.MustCompile(`(?i)<p>\s*Software version:?\s*(.*?)\s*</p>`),
	}

	ciscoSerialPatterns = []*regexp.Regexp{
		regexp.MustCompile(`<div class="serial-number">(.*?)</div>`),
		regexp.MustCompile(`<span>\s*Serial:\s*(.*?)\s*</span>`),
		regexp.MustCompile(`(?i)Serial Number:?\s*</td>\s*<td[^>]*>(.*?)</td>`),
		regexp.MustCompile(`(?i)<td[^>]*class="[^"]*label[^"]*"[^>]*>\s*Serial(?: Number)?:?\s*</td>\s*<td[^>]*class="[^"]*value[^"]*"[^>]*>\s*(.*?)\s*</td>`),
		regexp.MustCompile(`(?i)<span[^>]*class="[^"]*info-label[^"]*"[^>]*>\s*Serial(?: Number)?:?\s*</span>\s*<span[^>]*class="[^"]*info-value[^"]*"[^>]*>\s*(.*?)\s*</span>`),
		regexp.MustCompile(`(?i)<p>\s*Serial number:?\s*(.*?)\s*</p>`),
	}

	ciscoMACPatterns = []*regexp.Regexp{
		regexp.MustCompile(`<div class="mac-address">(.*?)</div>`),
		regexp.MustCompile(`<span>\s*MAC:\s*(.*?)\s*</span>`),
		regexp.MustCompile(`(?i)MAC Address:?\s*</td>\s*<td[^>]*>(.*?)</td>`),
		regexp.MustCompile(`(?i)<td[^>]*class="[^"]*label[^"]*"[^>]*>\s*MAC Address:?\s*</td>\s*<td[^>]*class="[^"]*value[^"]*"[^>]*>\s*(.*?)\s*</td>`),
		regexp.MustCompile(`(?i)<span[^>]*class="[^"]*info-label[^"]*"[^>]*>\s*MAC Address:?\s*</span>\s*<span[^>]*class="[^"]*info-value[^"]*"[^>]*>\s*(.*?)\s*</span>`),
	}

	ciscoSoftwareLabelRe = regexp.MustCompile(`(?i)(?:Software|Version)`)
	ciscoSerialLabelRe   = regexp.MustCompile(`(?i)Serial`)
)

// firstMatch returns the first capture group of the first pattern that
// matches content.
func firstMatch(patterns []*regexp.Regexp, content string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// ParseCiscoHTML extracts model, software version, serial, and MAC address
// from a Cisco or Webex endpoint's web root.
func ParseCiscoHTML(content string) Details {
	d := Details{Manufacturer: models.ManufacturerCisco}

	if m := ciscoTitleRe.FindStringSubmatch(content); m != nil {
		model := strings.TrimSpace(m[1])
		// Keep legacy TelePresence names as-is; prefix everything else so
		// "Room Kit" reads "Webex Room Kit".
		lower := strings.ToLower(model)
		if model != "" && !strings.Contains(lower, "webex") && !strings.Contains(lower, "telepresence") {
			model = "Webex " + model
		}
		if model != "" {
			d.Model = model
		}
	}

	d.SoftwareVersion = firstMatch(ciscoSWVersionPatterns, content)
	d.Serial = firstMatch(ciscoSerialPatterns, content)
	d.MACAddress = firstMatch(ciscoMACPatterns, content)

	// Structural fallback: when the regex ladder found nothing, look for a
	// label element containing "Software" or "Serial" and read the sibling
	// cell next to it.
	if d.SoftwareVersion == "" || d.Serial == "" {
		if doc := parseDOM(content); doc != nil {
			if d.SoftwareVersion == "" {
				for _, parent := range findLabelParents(doc, ciscoSoftwareLabelRe) {
					if v := siblingElementText(parent, "td", "span"); v != "" {
						d.SoftwareVersion = v
						break
					}
				}
			}
			if d.Serial == "" {
				for _, parent := range findLabelParents(doc, ciscoSerialLabelRe) {
					if v := siblingElementText(parent, "td", "span"); v != "" {
						d.Serial = v
						break
					}
				}
			}
		}
	}

	return d
}
