package config

import "time"

// Registry represents the entire user configuration file. It stores
// the local connection details needed to reach devices on the LAN:
// nothing here is fetched from Tuya's cloud API.
type Registry struct {
	Version     int                `yaml:"version"`
	Devices     map[string]*Device `yaml:"devices,omitempty"` // keyed by device ID
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Device holds what's needed to open a session with a single device
// without re-entering its local key every time.
type Device struct {
	Nickname string    `yaml:"nickname,omitempty"` // user-friendly name
	LocalKey string    `yaml:"local_key"`          // 16-byte AES key, hex or raw
	LastIP   string    `yaml:"last_ip,omitempty"`  // last known LAN address
	Version  string    `yaml:"version"`            // "3.1" or "3.3"
	UDP      bool      `yaml:"udp,omitempty"`
	LastSeen time.Time `yaml:"last_seen,omitempty"`
}

// Preferences holds application-wide defaults.
type Preferences struct {
	DefaultVersion string `yaml:"default_version"` // protocol version for newly added devices
	DefaultPort    int    `yaml:"default_port,omitempty"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Devices: make(map[string]*Device),
		Preferences: &Preferences{
			DefaultVersion: "3.3",
		},
	}
}

// GetDevice retrieves device metadata by device ID. Returns nil if the
// device doesn't exist in the registry.
func (r *Registry) GetDevice(devID string) *Device {
	return r.Devices[devID]
}

// EnsureDevice ensures a device entry exists in the registry, creating
// one with default values if it doesn't.
func (r *Registry) EnsureDevice(devID string) *Device {
	if r.Devices == nil {
		r.Devices = make(map[string]*Device)
	}

	if device, exists := r.Devices[devID]; exists {
		return device
	}

	device := &Device{Version: r.defaultVersion()}
	r.Devices[devID] = device
	return device
}

func (r *Registry) defaultVersion() string {
	if r.Preferences != nil && r.Preferences.DefaultVersion != "" {
		return r.Preferences.DefaultVersion
	}
	return "3.3"
}

// UpdateDeviceLastSeen records the IP a device last answered on.
func (r *Registry) UpdateDeviceLastSeen(devID, ip string) {
	device := r.EnsureDevice(devID)
	device.LastSeen = time.Now()
	device.LastIP = ip
}

// SetDeviceNickname sets a user-friendly nickname for a device.
func (r *Registry) SetDeviceNickname(devID, nickname string) {
	device := r.EnsureDevice(devID)
	device.Nickname = nickname
}

// SetDeviceKey records the local key and protocol version for a device.
func (r *Registry) SetDeviceKey(devID, localKey, version string) {
	device := r.EnsureDevice(devID)
	device.LocalKey = localKey
	device.Version = version
}
