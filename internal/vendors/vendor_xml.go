package vendors

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// ParseVendorXML performs a generic tag search over an XML management API
// payload whose exact schema is unknown. The first element anywhere in the
// document whose name matches a model, version, or serial alias supplies
// that field.
func ParseVendorXML(data []byte) Details {
	var d Details

	modelTags := map[string]bool{"model": true, "productid": true}
	versionTags := map[string]bool{"sw_version": true, "version": true}
	serialTags := map[string]bool{"serial": true, "serialnumber": true}

	dec := xml.NewDecoder(bytes.NewReader(data))
	var current string
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			current = strings.ToLower(t.Name.Local)
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			switch {
			case d.Model == "" && modelTags[current]:
				d.Model = text
			case d.SoftwareVersion == "" && versionTags[current]:
				d.SoftwareVersion = text
			case d.Serial == "" && serialTags[current]:
				d.Serial = text
			}
		case xml.EndElement:
			current = ""
		}
	}

	return d
}
