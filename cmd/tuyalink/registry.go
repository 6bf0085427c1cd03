package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tuyalink/tuyalink/display"
	"github.com/tuyalink/tuyalink/internal/config"
	"github.com/tuyalink/tuyalink/internal/ui"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Manage the local device registry",
}

func init() {
	registryCmd.AddCommand(registryAddCmd)
	registryCmd.AddCommand(registryListCmd)
	registryCmd.AddCommand(registryRemoveCmd)

	registryAddCmd.Flags().StringVar(&addNickname, "nickname", "", "friendly name for the device")
	registryAddCmd.Flags().StringVar(&addIP, "ip", "", "last-known LAN address")
	registryAddCmd.Flags().StringVar(&addVersion, "proto", "3.3", `protocol version, "3.1" or "3.3"`)
	registryAddCmd.Flags().BoolVar(&addUDP, "udp", false, "mark this device as UDP-only")
}

var (
	addNickname string
	addIP       string
	addVersion  string
	addUDP      bool
)

var registryAddCmd = &cobra.Command{
	Use:   "add <device-id> <local-key>",
	Short: "Add or update a device in the registry",
	Example: `  tuyalink registry add abc123...def 0123456789abcdef --ip 192.168.1.40
  tuyalink registry add abc123...def 0123456789abcdef --proto 3.1 --nickname "kitchen plug"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		devID, localKey := args[0], args[1]

		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load device registry: %w", err)
		}

		if registry.GetDevice(devID) != nil && registry.GetDevice(devID).LocalKey != "" {
			if !ui.OverwriteKeyConfirmation(display.Format(devID)) {
				fmt.Println("cancelled")
				return nil
			}
		}

		registry.SetDeviceKey(devID, localKey, addVersion)
		if addNickname != "" {
			registry.SetDeviceNickname(devID, addNickname)
		}
		if addIP != "" {
			registry.UpdateDeviceLastSeen(devID, addIP)
		}
		registry.EnsureDevice(devID).UDP = addUDP

		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save device registry: %w", err)
		}

		fmt.Printf("saved %s (proto %s)\n", display.Format(devID), addVersion)
		return nil
	},
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List devices in the registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load device registry: %w", err)
		}

		ids := make([]string, 0, len(registry.Devices))
		for id := range registry.Devices {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		if len(ids) == 0 {
			fmt.Println("no devices registered")
			return nil
		}

		for _, id := range ids {
			dev := registry.Devices[id]
			name := dev.Nickname
			if name == "" {
				name = "(no nickname)"
			}
			fmt.Printf("%s  %-20s proto=%-4s ip=%s\n", display.Format(id), name, dev.Version, dev.LastIP)
		}
		return nil
	},
}

var registryRemoveCmd = &cobra.Command{
	Use:   "remove <device-id>",
	Short: "Remove a device from the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		devID := args[0]

		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load device registry: %w", err)
		}

		if registry.GetDevice(devID) == nil {
			return fmt.Errorf("%s is not in the registry", display.Format(devID))
		}

		delete(registry.Devices, devID)
		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save device registry: %w", err)
		}

		fmt.Printf("removed %s\n", display.Format(devID))
		return nil
	},
}
