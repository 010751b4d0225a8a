package vendors

import (
	"regexp"
	"strings"

	"github.com/roomscout/roomscout/pkg/models"
)

// genericVendorKeywords are checked against the page title, in order, when
// no vendor-specific parser matched the body.
var genericVendorKeywords = []string{
	"cisco", "polycom", "tandberg", "webex", "lifesize", "avaya", "huawei", "zoom",
}

var genericVersionLabelRe = regexp.MustCompile(`(?i)(version|software|firmware|sw version)`)

// normalizeVendor maps a matched title keyword to its canonical manufacturer
// name. Webex-branded devices are Cisco hardware; TANDBERG keeps its
// historical all-caps styling.
func normalizeVendor(keyword string) string {
	switch keyword {
	case "webex":
		return models.ManufacturerCisco
	case "tandberg":
		return models.ManufacturerTandberg
	default:
		return strings.ToUpper(keyword[:1]) + keyword[1:]
	}
}

// ParseGenericHTML is the fallback parser for devices whose body revealed no
// vendor signature. It walks the DOM for a known vendor keyword in the title
// and for a labelled version string anywhere in the document.
func ParseGenericHTML(content string) Details {
	var d Details

	doc := parseDOM(content)
	if doc == nil {
		return d
	}

	if title := domTitle(doc); title != "" {
		lower := strings.ToLower(title)
		for _, keyword := range genericVendorKeywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			d.Manufacturer = normalizeVendor(keyword)

			// Strip the matched keyword from the title to guess the model.
			re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))
			if model := strings.TrimSpace(re.ReplaceAllString(title, "")); model != "" {
				d.Model = model
			}
			break
		}
	}

	for _, parent := range findLabelParents(doc, genericVersionLabelRe) {
		if v := siblingText(parent); v != "" {
			d.SoftwareVersion = v
			break
		}
	}

	return d
}
