package vendors

import (
	"encoding/xml"
	"strings"

	"github.com/roomscout/roomscout/pkg/models"
)

// ciscoStatus mirrors the element paths of a codec's status.xml. Only the
// paths the extractor consumes are mapped; everything else is ignored.
type ciscoStatus struct {
	SystemUnit struct {
		ProductId   string `xml:"ProductId"`
		ProductType string `xml:"ProductType"`
		Software    struct {
			DisplayName string `xml:"DisplayName"`
			Version     string `xml:"Version"`
		} `xml:"Software"`
		Hardware struct {
			SerialNumber string `xml:"SerialNumber"`
			MACAddress   string `xml:"MACAddress"`
		} `xml:"Hardware"`
	} `xml:"SystemUnit"`
	Network struct {
		Ethernet struct {
			MacAddress string `xml:"MacAddress"`
		} `xml:"Ethernet"`
		IPv4 struct {
			Address    string `xml:"Address"`
			SubnetMask string `xml:"SubnetMask"`
			Gateway    string `xml:"Gateway"`
		} `xml:"IPv4"`
	} `xml:"Network"`
	SIP struct {
		Registration struct {
			Status string `xml:"Status"`
			URI    string `xml:"URI"`
		} `xml:"Registration"`
	} `xml:"SIP"`
	Time struct {
		SystemTime string `xml:"SystemTime"`
	} `xml:"Time"`
	Cameras struct {
		Camera []struct {
			Model        string `xml:"Model"`
			SerialNumber string `xml:"SerialNumber"`
			Connected    string `xml:"Connected"`
		} `xml:"Camera"`
	} `xml:"Cameras"`
}

// ciscoConfig mirrors the element paths of config.xml. SystemUnit names have
// shipped under both <Name> and a shortened <n> tag depending on firmware.
type ciscoConfig struct {
	SystemUnit struct {
		Name        string `xml:"Name"`
		ShortName   string `xml:"n"`
		ContactInfo struct {
			Name          string `xml:"Name"`
			ShortName     string `xml:"n"`
			ContactNumber string `xml:"ContactNumber"`
		} `xml:"ContactInfo"`
	} `xml:"SystemUnit"`
	SIP struct {
		URI string `xml:"URI"`
	} `xml:"SIP"`
}

// ParseCiscoStatusXML extracts hardware, software, network, SIP, and camera
// attributes from a status.xml document. A document that fails to parse
// yields a Details carrying only the manufacturer.
func ParseCiscoStatusXML(data []byte) Details {
	d := Details{Manufacturer: models.ManufacturerCisco}

	var status ciscoStatus
	if err := xml.Unmarshal(data, &status); err != nil {
		return d
	}

	if pid := status.SystemUnit.ProductId; pid != "" {
		d.Model = strings.TrimSpace(strings.TrimPrefix(pid, "Cisco "))
	}

	sw := status.SystemUnit.Software
	switch {
	case sw.DisplayName != "" && sw.Version != "":
		d.SoftwareVersion = sw.DisplayName + " " + sw.Version
	case sw.Version != "":
		d.SoftwareVersion = sw.Version
	}

	d.Serial = status.SystemUnit.Hardware.SerialNumber
	d.MACAddress = status.SystemUnit.Hardware.MACAddress
	if d.MACAddress == "" {
		d.MACAddress = status.Network.Ethernet.MacAddress
	}
	d.ProductType = status.SystemUnit.ProductType

	d.Address = status.Network.IPv4.Address
	d.SubnetMask = status.Network.IPv4.SubnetMask
	d.Gateway = status.Network.IPv4.Gateway

	d.SIPStatus = status.SIP.Registration.Status
	d.SIPURI = status.SIP.Registration.URI
	d.SystemTime = status.Time.SystemTime

	for _, cam := range status.Cameras.Camera {
		if cam.Model == "" && cam.SerialNumber == "" && cam.Connected == "" {
			continue
		}
		d.Cameras = append(d.Cameras, models.Camera{
			Model:        cam.Model,
			SerialNumber: cam.SerialNumber,
			Connected:    strings.EqualFold(cam.Connected, "true"),
		})
	}

	return d
}

// ParseCiscoConfigXML extracts the configured system name, contact info, and
// SIP URI from a config.xml document.
func ParseCiscoConfigXML(data []byte) Details {
	d := Details{Manufacturer: models.ManufacturerCisco}

	var config ciscoConfig
	if err := xml.Unmarshal(data, &config); err != nil {
		return d
	}

	d.SystemName = config.SystemUnit.Name
	if d.SystemName == "" {
		d.SystemName = config.SystemUnit.ShortName
	}

	contactName := config.SystemUnit.ContactInfo.Name
	if contactName == "" {
		contactName = config.SystemUnit.ContactInfo.ShortName
	}
	if contactName != "" {
		d.ContactInfo = contactName
		if num := config.SystemUnit.ContactInfo.ContactNumber; num != "" {
			d.ContactInfo += " (" + num + ")"
		}
	}

	d.SIPURI = config.SIP.URI

	return d
}
