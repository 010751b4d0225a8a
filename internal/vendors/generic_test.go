package vendors

import (
	"testing"

	"github.com/roomscout/roomscout/pkg/models"
)

func TestParseTandbergHTML(t *testing.T) {
	content := `<title>TANDBERG Codec C60</title>
		<div id="sw-version">TC6.3.2</div>
		<div id="product-id">Codec C60</div>`

	d := ParseTandbergHTML(content)
	if d.Manufacturer != "TANDBERG" {
		t.Errorf("Manufacturer = %q", d.Manufacturer)
	}
	if d.Model != "Codec C60" {
		t.Errorf("Model = %q", d.Model)
	}
	if d.SoftwareVersion != "TC6.3.2" {
		t.Errorf("SoftwareVersion = %q", d.SoftwareVersion)
	}
	if d.ProductType != "Codec C60" {
		t.Errorf("ProductType = %q", d.ProductType)
	}
}

func TestParseTandbergHTMLTableFallback(t *testing.T) {
	content := `<title>TANDBERG MXP 990</title>
		<table><tr><td>Software:</td><td class="val">F9.1</td></tr></table>`

	d := ParseTandbergHTML(content)
	if d.SoftwareVersion != "F9.1" {
		t.Errorf("SoftwareVersion = %q", d.SoftwareVersion)
	}
}

func TestParseGenericHTMLVendorKeywords(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantMfr  string
		wantModl string
	}{
		{
			name:     "lifesize title",
			content:  `<html><head><title>LifeSize Icon 600</title></head></html>`,
			wantMfr:  "Lifesize",
			wantModl: "Icon 600",
		},
		{
			name:     "webex alias maps to Cisco",
			content:  `<html><head><title>Webex Board 55</title></head></html>`,
			wantMfr:  models.ManufacturerCisco,
			wantModl: "Board 55",
		},
		{
			name:     "tandberg alias keeps caps",
			content:  `<html><head><title>Tandberg Edge 95</title></head></html>`,
			wantMfr:  models.ManufacturerTandberg,
			wantModl: "Edge 95",
		},
		{
			name:    "no known vendor",
			content: `<html><head><title>Device Manager</title></head></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseGenericHTML(tt.content)
			if d.Manufacturer != tt.wantMfr {
				t.Errorf("Manufacturer = %q, want %q", d.Manufacturer, tt.wantMfr)
			}
			if d.Model != tt.wantModl {
				t.Errorf("Model = %q, want %q", d.Model, tt.wantModl)
			}
		})
	}
}

func TestParseGenericHTMLVersionSibling(t *testing.T) {
	content := `<html><head><title>Huawei TE40</title></head><body>
		<table><tr><td>Firmware</td><td>V600R019C00</td></tr></table>
	</body></html>`

	d := ParseGenericHTML(content)
	if d.Manufacturer != "Huawei" {
		t.Errorf("Manufacturer = %q", d.Manufacturer)
	}
	if d.Model != "TE40" {
		t.Errorf("Model = %q", d.Model)
	}
	if d.SoftwareVersion != "V600R019C00" {
		t.Errorf("SoftwareVersion = %q", d.SoftwareVersion)
	}
}

func TestDetailsInformative(t *testing.T) {
	if (Details{Manufacturer: "Cisco"}).Informative() {
		t.Error("manufacturer alone should not be informative")
	}
	if !(Details{Manufacturer: "Cisco", Model: "Webex Room Kit"}).Informative() {
		t.Error("manufacturer plus model should be informative")
	}
}

func TestDetailsApplyToMonotonic(t *testing.T) {
	e := &models.Endpoint{
		IP:           "10.0.0.5",
		Manufacturer: "Cisco",
		Model:        "Webex Room Kit",
		Serial:       "FTT234500AB",
	}

	// A later, sparser parse must not clear what is already known.
	Details{Manufacturer: "Cisco", SoftwareVersion: "10.11.2.3"}.ApplyTo(e)

	if e.Model != "Webex Room Kit" {
		t.Errorf("Model = %q, want preserved", e.Model)
	}
	if e.Serial != "FTT234500AB" {
		t.Errorf("Serial = %q, want preserved", e.Serial)
	}
	if e.SoftwareVersion != "10.11.2.3" {
		t.Errorf("SoftwareVersion = %q, want applied", e.SoftwareVersion)
	}
}
