package vendors

import (
	"regexp"
	"strings"

	"github.com/roomscout/roomscout/pkg/models"
)

var (
	tandbergTitleRe   = regexp.MustCompile(`(?i)<title>(?:TANDBERG)?\s*(.*?)</title>`)
	tandbergSWIDRe    = regexp.MustCompile(`<div id="sw-version">(.*?)</div>`)
	tandbergSWTableRe = regexp.MustCompile(`Software:\s*</td><td[^>]*>(.*?)</td>`)
	tandbergProductRe = regexp.MustCompile(`<div id="product-id">(.*?)</div>`)
)

// ParseTandbergHTML extracts model, software version, and product ID from a
// legacy TANDBERG endpoint's web root.
func ParseTandbergHTML(content string) Details {
	d := Details{Manufacturer: models.ManufacturerTandberg}

	if m := tandbergTitleRe.FindStringSubmatch(content); m != nil {
		d.Model = strings.TrimSpace(m[1])
	}

	if m := tandbergSWIDRe.FindStringSubmatch(content); m != nil {
		d.SoftwareVersion = strings.TrimSpace(m[1])
	} else if m := tandbergSWTableRe.FindStringSubmatch(content); m != nil {
		d.SoftwareVersion = strings.TrimSpace(m[1])
	}

	if m := tandbergProductRe.FindStringSubmatch(content); m != nil {
		d.ProductType = strings.TrimSpace(m[1])
	}

	return d
}
