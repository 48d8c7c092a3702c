package app

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// dump writes an intermediate artifact under DumpDir for debugging.
// Best effort: failures are logged, never propagated.
func (a *App) dump(name, content string) {
	if a.cfg.DumpDir == "" {
		return
	}
	if err := os.MkdirAll(a.cfg.DumpDir, 0o755); err != nil {
		log.Warn().Err(err).Str("dir", a.cfg.DumpDir).Msg("dump dir unavailable")
		return
	}
	path := filepath.Join(a.cfg.DumpDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("dump write failed")
		return
	}
	log.Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote dump")
}
