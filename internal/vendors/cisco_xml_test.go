package vendors

import (
	"testing"

	"github.com/roomscout/roomscout/pkg/models"
)

const statusXMLFixture = `<?xml version="1.0"?>
<Status>
  <SystemUnit>
    <ProductId>Cisco Webex Room Kit</ProductId>
    <ProductType>Cisco Codec</ProductType>
    <Software>
      <Version>10.11.2.3</Version>
    </Software>
    <Hardware>
      <SerialNumber>FTT234500AB</SerialNumber>
      <MACAddress>00:11:22:33:44:55</MACAddress>
    </Hardware>
  </SystemUnit>
  <Network>
    <IPv4>
      <Address>10.0.0.42</Address>
      <SubnetMask>255.255.255.0</SubnetMask>
      <Gateway>10.0.0.1</Gateway>
    </IPv4>
  </Network>
  <SIP>
    <Registration>
      <Status>Registered</Status>
      <URI>room.kit@example.com</URI>
    </Registration>
  </SIP>
  <Time>
    <SystemTime>2026-08-30T14:05:12Z</SystemTime>
  </Time>
  <Cameras>
    <Camera item="1">
      <Model>Cisco Quad Camera</Model>
      <SerialNumber>FTT234500CC</SerialNumber>
      <Connected>True</Connected>
    </Camera>
    <Camera item="2">
      <Model>Precision 60</Model>
      <SerialNumber>FTT234500DD</SerialNumber>
      <Connected>False</Connected>
    </Camera>
  </Cameras>
</Status>`

func TestParseCiscoStatusXML(t *testing.T) {
	d := ParseCiscoStatusXML([]byte(statusXMLFixture))

	if d.Manufacturer != models.ManufacturerCisco {
		t.Errorf("Manufacturer = %q, want Cisco", d.Manufacturer)
	}
	if d.Model != "Webex Room Kit" {
		t.Errorf("Model = %q, want %q", d.Model, "Webex Room Kit")
	}
	if d.SoftwareVersion != "10.11.2.3" {
		t.Errorf("SoftwareVersion = %q, want %q", d.SoftwareVersion, "10.11.2.3")
	}
	if d.Serial != "FTT234500AB" {
		t.Errorf("Serial = %q, want %q", d.Serial, "FTT234500AB")
	}
	if d.MACAddress != "00:11:22:33:44:55" {
		t.Errorf("MACAddress = %q, want %q", d.MACAddress, "00:11:22:33:44:55")
	}
	if d.Address != "10.0.0.42" || d.SubnetMask != "255.255.255.0" || d.Gateway != "10.0.0.1" {
		t.Errorf("network = %q/%q gw %q", d.Address, d.SubnetMask, d.Gateway)
	}
	if d.SIPStatus != "Registered" || d.SIPURI != "room.kit@example.com" {
		t.Errorf("SIP = %q %q", d.SIPStatus, d.SIPURI)
	}
	if d.SystemTime != "2026-08-30T14:05:12Z" {
		t.Errorf("SystemTime = %q", d.SystemTime)
	}

	if len(d.Cameras) != 2 {
		t.Fatalf("Cameras = %d, want 2", len(d.Cameras))
	}
	if d.Cameras[0].Model != "Cisco Quad Camera" || !d.Cameras[0].Connected {
		t.Errorf("camera 0 = %+v", d.Cameras[0])
	}
	if d.Cameras[1].SerialNumber != "FTT234500DD" || d.Cameras[1].Connected {
		t.Errorf("camera 1 = %+v", d.Cameras[1])
	}
}

func TestParseCiscoStatusXMLSoftwareDisplayName(t *testing.T) {
	doc := `<Status><SystemUnit>
      <ProductId>TelePresence SX80</ProductId>
      <Software><DisplayName>ce</DisplayName><Version>9.15.3</Version></Software>
    </SystemUnit></Status>`

	d := ParseCiscoStatusXML([]byte(doc))
	if d.SoftwareVersion != "ce 9.15.3" {
		t.Errorf("SoftwareVersion = %q, want %q", d.SoftwareVersion, "ce 9.15.3")
	}
	if d.Model != "TelePresence SX80" {
		t.Errorf("Model = %q", d.Model)
	}
}

func TestParseCiscoStatusXMLMACFallback(t *testing.T) {
	doc := `<Status>
      <SystemUnit><ProductId>Cisco Codec Pro</ProductId></SystemUnit>
      <Network><Ethernet><MacAddress>AA:BB:CC:DD:EE:FF</MacAddress></Ethernet></Network>
    </Status>`

	d := ParseCiscoStatusXML([]byte(doc))
	if d.MACAddress != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("MACAddress = %q, want Ethernet fallback", d.MACAddress)
	}
}

func TestParseCiscoStatusXMLMalformed(t *testing.T) {
	d := ParseCiscoStatusXML([]byte("<Status><SystemUnit>"))
	if d.Manufacturer != models.ManufacturerCisco {
		t.Errorf("Manufacturer = %q", d.Manufacturer)
	}
	if d.Informative() {
		t.Error("malformed document should not be informative")
	}
}

func TestParseCiscoConfigXML(t *testing.T) {
	doc := `<Configuration>
      <SystemUnit>
        <Name>Boardroom 4A</Name>
        <ContactInfo><Name>AV Support</Name><ContactNumber>x4455</ContactNumber></ContactInfo>
      </SystemUnit>
      <SIP><URI>boardroom.4a@example.com</URI></SIP>
    </Configuration>`

	d := ParseCiscoConfigXML([]byte(doc))
	if d.SystemName != "Boardroom 4A" {
		t.Errorf("SystemName = %q", d.SystemName)
	}
	if d.ContactInfo != "AV Support (x4455)" {
		t.Errorf("ContactInfo = %q", d.ContactInfo)
	}
	if d.SIPURI != "boardroom.4a@example.com" {
		t.Errorf("SIPURI = %q", d.SIPURI)
	}
}

func TestParseCiscoConfigXMLShortNameTag(t *testing.T) {
	doc := `<Configuration><SystemUnit><n>Huddle 2</n></SystemUnit></Configuration>`

	d := ParseCiscoConfigXML([]byte(doc))
	if d.SystemName != "Huddle 2" {
		t.Errorf("SystemName = %q, want %q", d.SystemName, "Huddle 2")
	}
}
