package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/funnel/internal/module"
	"github.com/nfrund/funnel/internal/modules/landing"
)

// AppModules lists every module the server registers and boots, in order.
func AppModules() []module.Module {
	return []module.Module{
		landing.New(),
	}
}

func (s *Server) bootModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range s.modules {
		slog.Debug("Booting module", "module", m.Name())
		if err := m.Boot(ctx, s.E.Group(""), s.Registry); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
	}
	return nil
}
