package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"syscall"

	"github.com/pinedns/pinedns/cache"
	"github.com/pinedns/pinedns/clock"
	"github.com/pinedns/pinedns/config"
	"github.com/pinedns/pinedns/metrics"
	"github.com/pinedns/pinedns/resolver"
)

func dropPrivileges(uid, gid int) error {
	if err := syscall.Setgid(gid); err != nil {
		return err
	}
	if err := syscall.Setuid(uid); err != nil {
		return err
	}
	return nil
}

func main() {
	conffile := "./pinedns.json"
	args := os.Args

	if len(args) > 1 {
		conffile = args[1]
	}

	cfg, err := config.Load(conffile)
	if err != nil {
		fmt.Printf("config %s not loaded - starting with defaults: %v\n", conffile, err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))

	met := metrics.Get(metrics.Config{
		Enable: !cfg.DisableMetrics,
		Port:   cfg.MetricsPort,
		Logger: logger,
	})
	if err := met.Start(); err != nil {
		logger.Warn("failed to start metrics", "error", err)
	}

	backend := cfg.CacheBackend
	if cfg.DisableCache {
		backend = "none"
	}
	sharedClock := clock.System{}
	recordCache, err := cache.New(backend, sharedClock)
	if err != nil {
		logger.Warn("failed to initialize cache - disabling caching", "error", err)
		recordCache = cache.DummyCache{}
	}

	addr := &net.UDPAddr{
		IP:   net.ParseIP(cfg.ListenAddress),
		Port: cfg.ListenPort,
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		logger.Error("failed to bind listening socket", "address", addr, "error", err)
		os.Exit(1)
	}

	upstream := resolver.NewUDPUpstream(cfg.UpstreamResolver, resolver.TimeoutFor(cfg.UpstreamTimeout))
	loop := resolver.New(conn, upstream, recordCache, met, sharedClock, logger)

	if err := dropPrivileges(65534, 65534); err != nil {
		logger.Warn("failed to drop privileges after bind", "error", err)
	} else {
		logger.Debug("successfully dropped privileges after bind")
	}

	logger.Info("starting dns server", "address", addr, "upstream", cfg.UpstreamResolver)
	if err := loop.Run(); err != nil {
		logger.Error("resolver loop exited", "error", err)
		os.Exit(1)
	}
}
