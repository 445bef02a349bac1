package sap

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jhoicas/Lubriportal-api/internal/application/catalog"
	"github.com/jhoicas/Lubriportal-api/pkg/logger"
)

// Syncer ejecuta el auto-sync del espejo en intervalos fijos mientras la
// bandera de conexión esté activa. Se detiene al cancelar el contexto; cada
// tick fallido simplemente degrada al dataset local (sin reintentos).
type Syncer struct {
	catalogUC *catalog.UseCase
	interval  time.Duration
	connected atomic.Bool
	log       *logger.Logger
}

// NewSyncer construye el auto-sync. Un intervalo no positivo usa 5 minutos.
func NewSyncer(catalogUC *catalog.UseCase, interval time.Duration, log *logger.Logger) *Syncer {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Syncer{catalogUC: catalogUC, interval: interval, log: log}
}

// SetConnected activa o desactiva el auto-sync (bandera del panel de integración).
func (s *Syncer) SetConnected(connected bool) {
	s.connected.Store(connected)
}

// Connected estado actual de la bandera.
func (s *Syncer) Connected() bool {
	return s.connected.Load()
}

// Run bloquea hasta que el contexto se cancele. Los ticks con la bandera
// apagada se ignoran. Pensado para correr en su propia goroutine.
func (s *Syncer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("auto-sync detenido")
			return
		case <-ticker.C:
			if !s.connected.Load() {
				continue
			}
			result := s.catalogUC.Sync(ctx)
			if result.Fallback {
				s.log.Warn().Str("detail", result.Detail).Msg("auto-sync degradado al dataset local")
			}
		}
	}
}
