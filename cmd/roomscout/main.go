// Roomscout finds video conferencing endpoints on a network.
//
// It sweeps an IP range for hosts exposing SIP, H.323, or web management
// ports, classifies the responders, and pulls model, software, and serial
// details from the vendor interfaces of Cisco, Polycom, and TANDBERG
// codecs.
//
// Usage:
//
//	roomscout [command] [flags]
//
// Running without arguments scans the local network.
// See 'roomscout --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roomscout/roomscout/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roomscout",
	Short: "Video conferencing endpoint scanner",
	Long: `Scan a network for video conferencing endpoints.

Roomscout probes hosts for SIP, H.323, and web management ports, then
interrogates the vendor web and API surfaces of the devices it finds to
report manufacturer, model, software version, and serial numbers.

If no IP range is given, the local network is detected automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(detailCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roomscout %s\n", version.Full())
	},
}
