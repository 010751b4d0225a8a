package models

// EndpointType categorizes a discovered device.
type EndpointType string

const (
	// EndpointTypeVideo marks a device identified as a room video codec.
	EndpointTypeVideo EndpointType = "video_endpoint"
	// EndpointTypeUnknown marks a responsive device that could not be classified.
	EndpointTypeUnknown EndpointType = "unknown"
)

// Manufacturer names used across the classification pipeline. Parsers only
// ever overwrite ManufacturerUnknown, never clear a resolved value.
const (
	ManufacturerUnknown  = "Unknown"
	ManufacturerCisco    = "Cisco"
	ManufacturerPolycom  = "Polycom"
	ManufacturerTandberg = "TANDBERG"
)

// Camera describes a camera reported by the Cisco XML status API.
type Camera struct {
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	Connected    bool   `json:"connected"`
}

// Credentials is an HTTP Basic Auth username/password pair.
type Credentials struct {
	Username string
	Password string
}

// DefaultCredentials is the factory-default pair shared by TANDBERG-lineage
// Cisco codecs. It is the first pair tried against every probed endpoint.
var DefaultCredentials = Credentials{Username: "admin", Password: "TANDBERG"}

// Endpoint is the record built up for a single discovered device. The sweeper
// creates it with identity and port data, the classifier enriches it in place.
// IP is the stable identity key and never changes once assigned.
type Endpoint struct {
	IP        string       `json:"ip"`
	Hostname  string       `json:"hostname,omitempty"`
	OpenPorts []int        `json:"open_ports,omitempty"`
	Type      EndpointType `json:"type"`
	Name      string       `json:"name,omitempty"`
	URI       string       `json:"uri,omitempty"`

	Manufacturer    string `json:"manufacturer,omitempty"`
	Model           string `json:"model,omitempty"`
	SoftwareVersion string `json:"sw_version,omitempty"`
	Serial          string `json:"serial,omitempty"`
	MACAddress      string `json:"mac_address,omitempty"`
	ProductType     string `json:"product_type,omitempty"`

	SystemName  string `json:"system_name,omitempty"`
	ContactInfo string `json:"contact_info,omitempty"`
	SIPStatus   string `json:"sip_status,omitempty"`
	SIPURI      string `json:"sip_uri,omitempty"`

	Address    string `json:"ip_address,omitempty"`
	SubnetMask string `json:"subnet_mask,omitempty"`
	Gateway    string `json:"gateway,omitempty"`
	SystemTime string `json:"system_time,omitempty"`

	Status       string   `json:"status,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Cameras      []Camera `json:"cameras,omitempty"`
}

// HasPort reports whether the given TCP port was confirmed open on the endpoint.
func (e *Endpoint) HasPort(port int) bool {
	for _, p := range e.OpenPorts {
		if p == port {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the endpoint. Enrichment always works on a
// copy so a failed extraction can fall back to the untouched original.
func (e *Endpoint) Clone() *Endpoint {
	c := *e
	if e.OpenPorts != nil {
		c.OpenPorts = append([]int(nil), e.OpenPorts...)
	}
	if e.Capabilities != nil {
		c.Capabilities = append([]string(nil), e.Capabilities...)
	}
	if e.Cameras != nil {
		c.Cameras = append([]Camera(nil), e.Cameras...)
	}
	return &c
}

// Identified reports whether both manufacturer and model resolved past
// their Unknown defaults.
func (e *Endpoint) Identified() bool {
	return e.Manufacturer != "" && e.Manufacturer != ManufacturerUnknown &&
		e.Model != "" && e.Model != ManufacturerUnknown
}
