package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/config"
	"github.com/openvault/openvault-edge/pkg/server/router"
)

type (
	BridgeServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	BridgeServer struct {
		*BaseServer
	}
)

func NewBridgeServer(di BridgeServerDI) *BridgeServer {
	s := &BridgeServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
	s.BaseServer.setupMetricsEndpoint()
	return s
}

func (s *BridgeServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.BridgePort)
	s.logger.WithField("addr", addr).Info("Starting bridge server")
	return s.router.Listen(addr)
}

func (s *BridgeServer) Shutdown() error {
	return s.router.Shutdown()
}
