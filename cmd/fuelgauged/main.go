// cmd/fuelgauged/main.go
package main

import (
	"context"
	"log"
	"os"

	"periph.io/x/host/v3"

	"fuelgauged/internal/config"
	"fuelgauged/internal/gauge/i2cdev"
	"fuelgauged/internal/poller"
	"fuelgauged/internal/writer"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: fuelgauged <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	config.ApplyDefaults(cfg)

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	// --------------------
	// Open the bus
	// --------------------

	if _, err := host.Init(); err != nil {
		log.Fatalf("host init failed: %v", err)
	}

	bus, err := i2cdev.New(i2cdev.Config{
		Bus:     cfg.Bus,
		Address: cfg.Address,
	})
	if err != nil {
		log.Fatalf("bus open failed: %v", err)
	}
	defer bus.Close()

	// --------------------
	// Build the pipeline
	// --------------------

	var sink writer.Sink
	if cfg.Sink.IsEnabled() {
		s, err := writer.NewSysfsSink(cfg.Sink.Path)
		if err != nil {
			log.Fatalf("sink setup failed: %v", err)
		}
		sink = s
	}

	p, err := poller.Build(cfg, bus, sink)
	if err != nil {
		log.Fatalf("poller build failed: %v", err)
	}

	log.Printf("fuelgauged: bus=%q addr=0x%02X interval=%ds publish=%v",
		cfg.Bus, cfg.Address, cfg.Poll.IntervalS, cfg.Sink.IsEnabled())

	// Runs until the process is terminated.
	p.Run(context.Background())
}
