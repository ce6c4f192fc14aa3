package bootstrap

import (
	"github.com/GoSim-25-26J-441/permit-checklist-backend/config"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/resolver"
)

// NewResolver uses the external geocoder when GEOCODER_URL is set and the
// keyword stub otherwise.
func NewResolver(cfg config.ResolverConfig) resolver.Resolver {
	if cfg.GeocoderURL != "" {
		return resolver.NewGeocoderClient(cfg.GeocoderURL, cfg.GeocoderTimeout)
	}
	return resolver.NewKeywordResolver(nil, cfg.DefaultJurisdiction)
}
