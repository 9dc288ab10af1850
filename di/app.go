package di

import (
	"github.com/rs/zerolog/log"

	"libdash/config"
	reportService "libdash/internal/domains/report/service"
	"libdash/transport/http"
)

// App bundles the HTTP server with the background refresh scheduler.
type App struct {
	Config *config.Config
	HTTP   *http.HTTP
	Report reportService.Report
}

func (a *App) Run() {
	if a.Config.Refresh.AutoStart {
		if err := a.Report.StartAutoRefresh(); err != nil {
			log.Error().Err(err).Msg("Failed to start auto refresh scheduler")
		}
	}

	a.HTTP.Serve()
}
