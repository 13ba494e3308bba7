// Command orbitsd serves the Hohmann transfer API.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/Agere98/orbits/api"
)

func main() {
	var confDir, listen string
	flag.StringVar(&confDir, "config", "", "directory holding conf.toml (defaults to $"+envConfigDir+")")
	flag.StringVar(&listen, "listen", "", "listen address, overrides server.listen")
	flag.Parse()

	cfg, err := loadConfig(confDir)
	if err != nil {
		logrus.Fatalf("could not load the configuration: %s", err)
	}
	if listen != "" {
		cfg.Listen = listen
	}
	log := newLogger(cfg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := api.NewServer(cfg.Server, log, reg, reg)
	if err := srv.Run(ctx, cfg.Listen); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
