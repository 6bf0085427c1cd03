// Tuyalink is a command-line client for the Tuya LAN wire protocol.
//
// It talks directly to a paired device on the local network — no
// cloud API, no MQTT broker — using the local key issued when the
// device was added to the Tuya app. Devices are remembered in a local
// registry (internal/config) so a device ID is enough for every
// command after it has been registered once.
//
// Usage:
//
//	tuyalink [command] [flags]
//
// Running without arguments launches the interactive device console.
// See 'tuyalink --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuyalink/tuyalink/internal/logging"
	"github.com/tuyalink/tuyalink/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tuyalink",
	Short: "Tuya LAN protocol client",
	Long: `A standalone client for the Tuya LAN wire protocol (versions 3.1 and 3.3).

Query and control already-paired devices over the local network, without
going through Tuya's cloud API. Devices are kept in a local registry so
you only need to enter a local key once per device.

If no command is specified, the interactive device console launches.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(registryCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tuyalink %s\n", version.Full())
	},
}
