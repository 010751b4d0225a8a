package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roomscout/roomscout/internal/apicache"
	"github.com/roomscout/roomscout/internal/config"
	"github.com/roomscout/roomscout/internal/discover"
	"github.com/roomscout/roomscout/internal/extract"
	"github.com/roomscout/roomscout/pkg/models"
)

var (
	flagRange      string
	flagJSON       bool
	flagSimple     bool
	flagForced     []string
	flagUsername   string
	flagPassword   string
	flagWorkers    int
	flagConfigPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRange, "range", "", "IP range to scan in CIDR notation (e.g. 192.168.1.0/24)")
	rootCmd.PersistentFlags().StringVar(&flagUsername, "username", "", "Username for authenticating with endpoints (default: admin)")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "Password for authenticating with endpoints (default: TANDBERG)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config file")

	for _, c := range []*cobra.Command{rootCmd, scanCmd} {
		c.Flags().BoolVar(&flagJSON, "json", false, "Output results in JSON format")
		c.Flags().BoolVar(&flagSimple, "simple", false, "Show simplified output (skip detail extraction)")
		c.Flags().StringArrayVar(&flagForced, "force-endpoint", nil, "Force an IP to be treated as a video endpoint (repeatable)")
		c.Flags().IntVar(&flagWorkers, "workers", 0, "Number of classification workers")
	}
}

// scanCmd is the explicit spelling of the default action.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a network range for video endpoints",
	Example: `  # Scan the local network
  roomscout scan

  # Scan a specific range, machine readable
  roomscout scan --range 10.20.30.0/24 --json

  # Treat a known codec behind a firewall as an endpoint
  roomscout scan --force-endpoint 10.20.30.17`,
	RunE: runScan,
}

// rotatingExtractor adapts credential rotation to the single-shot
// extraction interface the classifier consumes.
type rotatingExtractor struct {
	x *extract.Extractor
}

func (r rotatingExtractor) Extract(ctx context.Context, e *models.Endpoint, creds models.Credentials) (*models.Endpoint, error) {
	return r.x.ExtractWithRotation(ctx, e, creds)
}

type scanEnv struct {
	logger  *zap.Logger
	service *discover.Service
	creds   models.Credentials
}

func buildEnv() (*scanEnv, error) {
	v, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, err
	}

	logger, err := config.NewLogger(v)
	if err != nil {
		return nil, err
	}

	cfg := discover.ConfigFromViper(v)
	if flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}

	creds := models.Credentials{
		Username: v.GetString("auth.username"),
		Password: v.GetString("auth.password"),
	}
	if flagUsername != "" {
		creds.Username = flagUsername
	}
	if flagPassword != "" {
		creds.Password = flagPassword
	}

	cache := apicache.Open(v.GetString("cache.path"), logger)
	var rotation []models.Credentials
	if v.GetBool("auth.rotate") {
		rotation = extract.DefaultRotation
	}
	extractor := extract.New(cfg.HTTPTimeout, cache, rotation, logger)

	var ext discover.Extractor = extractor
	if len(rotation) > 0 {
		ext = rotatingExtractor{x: extractor}
	}

	return &scanEnv{
		logger:  logger,
		service: discover.NewService(cfg, ext, logger),
		creds:   creds,
	}, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runScan(cmd *cobra.Command, args []string) error {
	env, err := buildEnv()
	if err != nil {
		return err
	}
	defer env.logger.Sync()

	ctx, cancel := signalContext()
	defer cancel()

	if flagRange == "" && !flagJSON {
		fmt.Println("No range given, detecting local network...")
	}

	endpoints, err := env.service.FindEndpoints(ctx, flagRange, discover.FindOptions{
		IncludeDetails: !flagSimple,
		ForcedIPs:      flagForced,
		Credentials:    env.creds,
	})
	if err != nil {
		return err
	}

	return displayEndpoints(endpoints, flagJSON)
}

var detailCmd = &cobra.Command{
	Use:   "detail <ip>",
	Short: "Probe a single address and show full endpoint details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		ctx, cancel := signalContext()
		defer cancel()

		endpoint, err := env.service.EndpointDetails(ctx, args[0], env.creds)
		if err != nil {
			return err
		}
		if endpoint == nil {
			fmt.Printf("No device answered at %s.\n", args[0])
			return nil
		}
		return displayEndpoints([]*models.Endpoint{endpoint}, flagJSON)
	},
}

func init() {
	detailCmd.Flags().BoolVar(&flagJSON, "json", false, "Output result in JSON format")
}

func displayEndpoints(endpoints []*models.Endpoint, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(endpoints, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if len(endpoints) == 0 {
		fmt.Println("No video endpoints found on the network.")
		return nil
	}

	fmt.Printf("Found %d video endpoint(s):\n", len(endpoints))
	fmt.Println(strings.Repeat("-", 50))
	for i, e := range endpoints {
		fmt.Printf("Endpoint %d:\n", i+1)
		fmt.Printf("  Name: %s\n", e.Name)
		fmt.Printf("  IP: %s\n", e.IP)
		if e.Hostname != "" {
			fmt.Printf("  Hostname: %s\n", e.Hostname)
		}
		if len(e.OpenPorts) > 0 {
			fmt.Printf("  Open Ports: %s\n", joinPorts(e.OpenPorts))
		}
		if e.Manufacturer != "" && e.Manufacturer != models.ManufacturerUnknown {
			fmt.Printf("  Manufacturer: %s\n", e.Manufacturer)
		}
		if e.Model != "" && e.Model != models.ManufacturerUnknown {
			fmt.Printf("  Model: %s\n", e.Model)
		}
		if e.SoftwareVersion != "" && e.SoftwareVersion != models.ManufacturerUnknown {
			fmt.Printf("  Software: %s\n", e.SoftwareVersion)
		}
		if e.Serial != "" {
			fmt.Printf("  Serial: %s\n", e.Serial)
		}
		if e.Status != "" {
			fmt.Printf("  Status: %s\n", e.Status)
		}
		if len(e.Capabilities) > 0 {
			fmt.Printf("  Capabilities: %s\n", strings.Join(e.Capabilities, ", "))
		}
		fmt.Println(strings.Repeat("-", 50))
	}
	return nil
}

func joinPorts(ports []int) string {
	parts := make([]string, len(ports))
	for i, p := range ports {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, ", ")
}
