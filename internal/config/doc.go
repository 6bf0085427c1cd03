// Package config manages a YAML-based registry of paired devices:
// device ID, local key, last-known LAN address, and protocol version,
// so callers don't have to re-enter them on every run. The config
// follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/tuyalink/config.yaml or $HOME/.config/tuyalink/config.yaml
//   - macOS: $HOME/.config/tuyalink/config.yaml
//   - Windows: %LOCALAPPDATA%\tuyalink\config.yaml
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	registry.SetDeviceKey("002004265ccf7fb1b659", "bbe88b3f4106d354", "3.3")
//	registry.SetDeviceNickname("002004265ccf7fb1b659", "Living Room Plug")
//
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure
// atomic writes.
package config
