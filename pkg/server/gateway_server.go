package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/config"
	"github.com/openvault/openvault-edge/pkg/server/router"
)

type (
	GatewayServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	GatewayServer struct {
		*BaseServer
	}
)

func NewGatewayServer(di GatewayServerDI) *GatewayServer {
	s := &GatewayServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
	s.BaseServer.setupMetricsEndpoint()
	return s
}

func (s *GatewayServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.GatewayPort)
	s.logger.WithField("addr", addr).Info("Starting gateway server")
	return s.router.Listen(addr)
}

func (s *GatewayServer) Shutdown() error {
	return s.router.Shutdown()
}
