package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/zestagio/reader-launcher/internal/config"
	"github.com/zestagio/reader-launcher/internal/middlewares"
	"github.com/zestagio/reader-launcher/internal/server"
)

const nameServer = "server"

func initServer(
	cfg config.ServerConfig,
	root string,
	port int,
	onReady func(url string),
) (*server.Server, error) {
	lg := zap.L().Named(nameServer)

	accessLog, err := middlewares.ParseAccessLog(cfg.AccessLog)
	if err != nil {
		return nil, fmt.Errorf("parse access log mode: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		cfg.Host,
		port,
		root,
		server.WithAccessLog(accessLog),
		server.WithDirectoryListing(cfg.DirectoryListing),
		server.WithOnReady(onReady),
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
