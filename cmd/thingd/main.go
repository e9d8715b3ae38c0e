// cmd/thingd/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbcvcbk/knot-virtualthing/internal/config"
	"github.com/kbcvcbk/knot-virtualthing/internal/modbus"
	"github.com/kbcvcbk/knot-virtualthing/internal/poller"
)

// device health, derived from poll outcomes
const (
	healthUnknown = iota
	healthOK
	healthError
)

func main() {
	var (
		cfgPath string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:          "thingd",
		Short:        "Gateway daemon: keeps one Modbus slave connected and polls its registers",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfgPath, verbose)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "thing.yaml", "settings file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace modbus frames")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath string, verbose bool) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	var trace *log.Logger
	if verbose {
		trace = log.New(os.Stderr, "modbus ", log.LstdFlags)
	}

	// --------------------
	// Connection manager
	// --------------------

	conn, err := modbus.Start(modbus.Options{
		URL:     cfg.Thing.URL,
		SlaveID: cfg.Thing.SlaveID,
		Timeout: time.Duration(cfg.Thing.TimeoutMs) * time.Millisecond,
		OnConnected: func() {
			log.Printf("connected to %s (slave %d)", cfg.Thing.URL, cfg.Thing.SlaveID)
		},
		OnDisconnected: func() {
			log.Printf("lost connection to %s", cfg.Thing.URL)
		},
		Logger: trace,
	})
	if err != nil {
		return fmt.Errorf("modbus start failed: %w", err)
	}
	defer conn.Stop()

	// --------------------
	// Poller
	// --------------------

	p, err := poller.Build(cfg, conn)
	if err != nil {
		return fmt.Errorf("poller build failed: %w", err)
	}

	out := make(chan poller.PollResult)

	// Orchestrator: consume poll results, log readings, and log health
	// transitions once per edge rather than every cycle.
	go func() {
		health := healthUnknown

		for {
			select {
			case <-ctx.Done():
				return

			case res := <-out:
				if res.Err != nil {
					if health != healthError {
						log.Printf("thing %s unhealthy: %v", res.Thing, res.Err)
						health = healthError
					}
					continue
				}

				if health != healthOK {
					log.Printf("thing %s healthy", res.Thing)
					health = healthOK
				}

				for _, r := range res.Readings {
					log.Printf("%s[%d] = %s", r.Item.Name, r.Item.Address, r.Value)
				}
			}
		}
	}()

	go p.Run(ctx, out)

	<-ctx.Done()
	log.Print("terminate")
	return nil
}
