package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/gggames/server/core"
	"github.com/automoto/gggames/shared/gameconfig"
	"github.com/automoto/gggames/shared/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file (optional)")
	port := flag.Uint("port", 0, "Server port (overrides config)")
	tickRate := flag.Int("tickrate", 0, "Server tick rate in updates per second (overrides config)")
	name := flag.String("name", "", "Server display name (overrides config)")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	metricsAddr := flag.String("metrics", "", "Address for the Prometheus /metrics endpoint (overrides config, \"off\" disables)")
	watch := flag.Bool("watch", false, "Reload character tuning when the config file changes")
	flag.Parse()

	settings, err := gameconfig.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		settings.Server.Port = *port
	}
	if *tickRate != 0 {
		settings.Server.TickRate = *tickRate
	}
	if *name != "" {
		settings.Server.Name = *name
	}
	if *version != "" {
		settings.Server.Version = *version
	}
	if *metricsAddr != "" {
		settings.Server.MetricsAddr = *metricsAddr
	}
	if *watch {
		settings.Server.Watch = true
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := core.NewMetrics(reg)

	server, err := core.NewServer(settings, metrics)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if addr := settings.Server.MetricsAddr; addr != "" && addr != "off" {
		go serveMetrics(addr, reg)
	}

	if settings.Server.Watch && *configPath != "" {
		watcher, err := gameconfig.Watch(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer watcher.Close()
		go func() {
			for {
				select {
				case s := <-watcher.Updates:
					server.ReloadCharacter(s.Character)
				case err := <-watcher.Errors:
					log.Printf("[config] %v", err)
				case <-watcher.Done():
					return
				}
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting %q on port %d (tick rate: %d/s, version: %q, arena: %s)",
		settings.Server.Name, settings.Server.Port, settings.Server.TickRate,
		settings.Server.Version, settings.Arena.Name)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", core.Handler(reg))
	log.Printf("[metrics] serving /metrics on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[metrics] server error: %v", err)
	}
}
