// Package vendors contains the pure parsing functions that map raw HTTP
// response bodies from video endpoints to structured device attributes.
// Parsers never perform network I/O; same input always yields same output.
package vendors

import "github.com/roomscout/roomscout/pkg/models"

// Details is the attribute set a vendor parser can extract from a response
// body. Fields a parser could not determine stay empty and never overwrite
// previously resolved values on an endpoint.
type Details struct {
	Manufacturer    string
	Model           string
	SoftwareVersion string
	Serial          string
	MACAddress      string
	ProductType     string

	SystemName  string
	ContactInfo string
	SIPStatus   string
	SIPURI      string

	Address    string
	SubnetMask string
	Gateway    string
	SystemTime string

	Cameras []models.Camera
}

// Informative reports whether the parse yielded more than just a
// manufacturer. API responses that only confirm the vendor are treated as
// non-matches by the extractor.
func (d Details) Informative() bool {
	return d.Model != "" || d.SoftwareVersion != "" || d.Serial != "" ||
		d.MACAddress != "" || d.ProductType != "" || d.SystemName != "" ||
		d.ContactInfo != "" || d.SIPStatus != "" || d.SIPURI != "" ||
		d.Address != "" || d.SystemTime != "" || len(d.Cameras) > 0
}

// Merge copies non-empty fields from other into d, overwriting existing
// values. Empty fields in other leave d untouched.
func (d *Details) Merge(other Details) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&d.Manufacturer, other.Manufacturer)
	set(&d.Model, other.Model)
	set(&d.SoftwareVersion, other.SoftwareVersion)
	set(&d.Serial, other.Serial)
	set(&d.MACAddress, other.MACAddress)
	set(&d.ProductType, other.ProductType)
	set(&d.SystemName, other.SystemName)
	set(&d.ContactInfo, other.ContactInfo)
	set(&d.SIPStatus, other.SIPStatus)
	set(&d.SIPURI, other.SIPURI)
	set(&d.Address, other.Address)
	set(&d.SubnetMask, other.SubnetMask)
	set(&d.Gateway, other.Gateway)
	set(&d.SystemTime, other.SystemTime)
	if len(other.Cameras) > 0 {
		d.Cameras = other.Cameras
	}
}

// ApplyTo writes the extracted attributes onto an endpoint record. Only
// non-empty fields are applied, so enrichment is monotonic: a parser can
// upgrade a field but never clear one.
func (d Details) ApplyTo(e *models.Endpoint) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&e.Manufacturer, d.Manufacturer)
	set(&e.Model, d.Model)
	set(&e.SoftwareVersion, d.SoftwareVersion)
	set(&e.Serial, d.Serial)
	set(&e.MACAddress, d.MACAddress)
	set(&e.ProductType, d.ProductType)
	set(&e.SystemName, d.SystemName)
	set(&e.ContactInfo, d.ContactInfo)
	set(&e.SIPStatus, d.SIPStatus)
	set(&e.SIPURI, d.SIPURI)
	set(&e.Address, d.Address)
	set(&e.SubnetMask, d.SubnetMask)
	set(&e.Gateway, d.Gateway)
	set(&e.SystemTime, d.SystemTime)
	if len(d.Cameras) > 0 {
		e.Cameras = d.Cameras
	}
}
