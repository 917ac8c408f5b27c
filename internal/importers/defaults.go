package importers

import (
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
	"github.com/rcashie/fb-web-import/internal/importers/sfv"
)

// RegisterDefaults registers all built-in importers with the registry.
// Call this during application initialisation to enable standard importers.
func RegisterDefaults(r *Registry) {
	r.Register(sfv.Name, buildSFV)
}

// buildSFV creates the Street Fighter V importer from generic config.
// Supported config keys:
//   - game_id (string): Target id of the game document (default: "sfv")
func buildSFV(cfg map[string]any) (driven.ProposalBuilder, error) {
	var opts []sfv.Option
	if id := getStringFromConfig(cfg, "game_id"); id != "" {
		opts = append(opts, sfv.WithGameID(id))
	}
	return sfv.New(opts...), nil
}

// getStringFromConfig safely extracts a string from generic config map.
func getStringFromConfig(cfg map[string]any, key string) string {
	if cfg == nil {
		return ""
	}
	s, _ := cfg[key].(string)
	return s
}
