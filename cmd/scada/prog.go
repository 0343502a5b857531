package main

import (
	"github.com/kardianos/service"
	"golang.org/x/sync/errgroup"

	"github.com/forlenza-industrial/scada"
	"github.com/forlenza-industrial/scada/internal/browser"
	"github.com/forlenza-industrial/scada/internal/ui"
)

var svcConfig = &service.Config{
	Name:        "scada",
	DisplayName: "Forlenza Industrial SCADA Control System",
}

// prog runs the operator interface until the process is interrupted.
type prog struct {
	cfg    *scada.Config
	status ui.Status

	server *ui.Server
	g      errgroup.Group
}

func (p *prog) Start(s service.Service) error {
	srv, err := ui.NewServer(p.cfg.UI.Addr(), p.status)
	if err != nil {
		return err
	}
	if err := srv.Listen(); err != nil {
		mainLog.Error().Err(err).Str("addr", p.cfg.UI.Addr()).Msg("could not listen")
		return err
	}
	if internalLogWriter != nil {
		srv.Register("/api/logs", internalLogWriter)
	}
	p.server = srv
	p.g.Go(srv.Serve)

	url := srv.URL()
	mainLog.Info().Str("url", url).Msg("operator interface started")
	if p.cfg.UI.OpenBrowser {
		p.g.Go(func() error {
			if err := browser.Open(url); err != nil {
				mainLog.Warn().Err(err).Str("url", url).Msg("could not open browser")
			}
			return nil
		})
	}
	return nil
}

func (p *prog) Stop(s service.Service) error {
	if p.server == nil {
		return nil
	}
	if err := p.server.Stop(); err != nil {
		mainLog.Error().Err(err).Msg("operator interface shutdown failed")
		return err
	}
	return p.g.Wait()
}
