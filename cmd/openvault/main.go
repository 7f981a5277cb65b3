package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/openvault/openvault-edge/pkg/config"
	handlers "github.com/openvault/openvault-edge/pkg/handlers/http"
	wsHandlers "github.com/openvault/openvault-edge/pkg/handlers/websocket"
	"github.com/openvault/openvault-edge/pkg/infra/httpx"
	infraLogger "github.com/openvault/openvault-edge/pkg/infra/logger"
	"github.com/openvault/openvault-edge/pkg/infra/openvault"
	"github.com/openvault/openvault-edge/pkg/middleware"
	"github.com/openvault/openvault-edge/pkg/server"
	"github.com/openvault/openvault-edge/pkg/server/router"
	"github.com/openvault/openvault-edge/pkg/version"
)

func main() {
	serverType := getServerType()
	envFile := os.Getenv("ENV_FILE")

	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger(serverType)

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	// One outbound pool for the lifetime of the process
	httpClient := httpx.NewFastHTTPClient(
		httpx.WithTimeout(time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second),
		httpx.WithUserAgent(version.AppName+"/"+version.Version),
	)
	streamClient := &http.Client{
		Timeout: time.Duration(cfg.Upstream.ChatTimeoutSeconds) * time.Second,
	}

	upstreamClient := openvault.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, httpClient, logger)
	gatewayUpstreamClient := openvault.NewClient(cfg.Upstream.BaseURL, "", httpClient, logger)

	middlewareTransport := middleware.Transport{
		AuthMiddleware:      middleware.NewAuthMiddleware(logger),
		MetricsMiddleware:   middleware.NewMetricsMiddleware(logger, serverType),
		WebsocketMiddleware: middleware.NewWebsocketMiddleware(logger, cfg.WebSocket.MaxConnections),
	}

	handlerTransport := handlers.HandlerTransport{
		// Gateway
		ForwardedHandler:     handlers.NewForwardedHandler(logger, cfg.Upstream.BaseURL, httpClient, streamClient),
		GatewayHealthHandler: handlers.NewGatewayHealthHandler(logger, gatewayUpstreamClient),
		// Bridge
		RootHandler:           handlers.NewRootHandler(logger),
		BridgeHealthHandler:   handlers.NewBridgeHealthHandler(logger, upstreamClient),
		AnalyzeSafetyHandler:  handlers.NewAnalyzeSafetyHandler(logger, upstreamClient),
		ConstitutionalHandler: handlers.NewConstitutionalHandler(logger, upstreamClient),
		ChatCompletionHandler: handlers.NewChatCompletionHandler(logger, upstreamClient),
		ListPoliciesHandler:   handlers.NewListPoliciesHandler(logger, upstreamClient),
		BatchAnalyzeHandler:   handlers.NewBatchAnalyzeHandler(logger, upstreamClient),
	}

	wsHandlerTransport := wsHandlers.HandlerTransport{
		SafetyMonitorHandler: wsHandlers.NewSafetyMonitorHandler(logger, upstreamClient),
	}

	var srv server.Server
	switch serverType {
	case "bridge":
		srv = server.NewBridgeServer(server.BridgeServerDI{
			Config: cfg,
			Logger: logger,
			Routers: []router.ServerRouter{
				router.NewBridgeRouter(middlewareTransport, handlerTransport, wsHandlerTransport),
			},
		})
	default:
		srv = server.NewGatewayServer(server.GatewayServerDI{
			Config: cfg,
			Logger: logger,
			Routers: []router.ServerRouter{
				router.NewGatewayRouter(middlewareTransport, handlerTransport),
			},
		})
	}

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}

func getServerType() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "gateway"
}
