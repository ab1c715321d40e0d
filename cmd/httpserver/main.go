package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/nhdewitt/tiny-httpd/internal/config"
	"github.com/nhdewitt/tiny-httpd/internal/server"
	"github.com/nhdewitt/tiny-httpd/internal/website"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv)
	if err != nil {
		logrus.Fatalf("Error loading config: %v", err)
	}

	logger := logrus.StandardLogger()
	logger.SetLevel(cfg.LogLevel)

	handler, err := website.New(cfg.PublicPath,
		website.WithLogger(logger),
		website.WithBadRequestStatus(cfg.BadRequestStatus),
	)
	if err != nil {
		logger.Fatalf("Error loading site: %v", err)
	}

	srv, err := server.New(cfg.Addr, server.WithLogger(logger))
	if err != nil {
		logger.Fatalf("Error starting server: %v", err)
	}
	defer srv.Close()

	go srv.Run(handler)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("Server gracefully stopped")
}
