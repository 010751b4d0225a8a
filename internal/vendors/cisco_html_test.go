package vendors

import "testing"

func TestParseCiscoHTMLTitleNormalization(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain model gets Webex prefix",
			content: `<html><head><title>Cisco Room Kit</title></head></html>`,
			want:    "Webex Room Kit",
		},
		{
			name:    "webex prefix stripped then restored",
			content: `<html><head><title>Webex Desk Pro</title></head></html>`,
			want:    "Webex Desk Pro",
		},
		{
			name:    "telepresence keeps legacy naming",
			content: `<html><head><title>Cisco TelePresence SX20</title></head></html>`,
			want:    "TelePresence SX20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseCiscoHTML(tt.content)
			if d.Model != tt.want {
				t.Errorf("Model = %q, want %q", d.Model, tt.want)
			}
			if d.Manufacturer != "Cisco" {
				t.Errorf("Manufacturer = %q, want Cisco", d.Manufacturer)
			}
		})
	}
}

func TestParseCiscoHTMLPatternLadder(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantSW     string
		wantSerial string
		wantMAC    string
	}{
		{
			name: "dedicated class markers",
			content: `<title>Cisco Room Bar</title>
				<span class="sw-version">RoomOS 11.5.2.4</span>
				<div class="serial-number">FOC2547AAAA</div>
				<div class="mac-address">00:50:60:01:02:03</div>`,
			wantSW:     "RoomOS 11.5.2.4",
			wantSerial: "FOC2547AAAA",
			wantMAC:    "00:50:60:01:02:03",
		},
		{
			name: "sw-info div and labelled spans",
			content: `<div class="sw-info">ce 9.15.0</div>
				<span> Serial: FTT210400ZZ </span>
				<span> MAC: 11:22:33:44:55:66 </span>`,
			wantSW:     "ce 9.15.0",
			wantSerial: "FTT210400ZZ",
			wantMAC:    "11:22:33:44:55:66",
		},
		{
			name: "table label and value cells",
			content: `<table>
				<tr><td>Software Version:</td> <td class="v">RoomOS 10.19.1.2</td></tr>
				<tr><td>Serial Number:</td> <td>FOC1111BBBB</td></tr>
				<tr><td>MAC Address:</td> <td>AA:00:AA:00:AA:00</td></tr>
				</table>`,
			wantSW:     "RoomOS 10.19.1.2",
			wantSerial: "FOC1111BBBB",
			wantMAC:    "AA:00:AA:00:AA:00",
		},
		{
			name: "label and value classed cells",
			content: `<td class="field-label">Software</td><td class="field-value">TC7.3.21</td>
				<td class="field-label">Serial Number:</td><td class="field-value">B1AD25A00000</td>`,
			wantSW:     "TC7.3.21",
			wantSerial: "B1AD25A00000",
		},
		{
			name: "info block spans",
			content: `<span class="info-label">Software:</span> <span class="info-value">RoomOS 11.1</span>
				<span class="info-label">Serial</span> <span class="info-value">WZP26150000</span>`,
			wantSW:     "RoomOS 11.1",
			wantSerial: "WZP26150000",
		},
		{
			name: "paragraph text on older models",
			content: `<p>Software version: F9.3.1</p>
				<p>Serial number: 42A00042</p>`,
			wantSW:     "F9.3.1",
			wantSerial: "42A00042",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseCiscoHTML(tt.content)
			if d.SoftwareVersion != tt.wantSW {
				t.Errorf("SoftwareVersion = %q, want %q", d.SoftwareVersion, tt.wantSW)
			}
			if d.Serial != tt.wantSerial {
				t.Errorf("Serial = %q, want %q", d.Serial, tt.wantSerial)
			}
			if tt.wantMAC != "" && d.MACAddress != tt.wantMAC {
				t.Errorf("MACAddress = %q, want %q", d.MACAddress, tt.wantMAC)
			}
		})
	}
}

func TestParseCiscoHTMLDOMFallback(t *testing.T) {
	// No pattern in the ladder matches this layout; the value sits in a
	// sibling element after a bare label cell.
	content := `<html><body><table>
		<tr><th>Software</th><td>RoomOS 11.9.1.13</td></tr>
		<tr><th>Serial</th><td>FOC9999CCCC</td></tr>
	</table></body></html>`

	d := ParseCiscoHTML(content)
	if d.SoftwareVersion != "RoomOS 11.9.1.13" {
		t.Errorf("SoftwareVersion = %q", d.SoftwareVersion)
	}
	if d.Serial != "FOC9999CCCC" {
		t.Errorf("Serial = %q", d.Serial)
	}
}

func TestParseCiscoHTMLEmptyBody(t *testing.T) {
	d := ParseCiscoHTML("")
	if d.Manufacturer != "Cisco" {
		t.Errorf("Manufacturer = %q", d.Manufacturer)
	}
	if d.Model != "" || d.SoftwareVersion != "" || d.Serial != "" {
		t.Errorf("expected empty fields, got %+v", d)
	}
}
