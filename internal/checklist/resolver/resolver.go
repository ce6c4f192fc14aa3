// Package resolver maps a free-text project address to a jurisdiction id.
package resolver

import (
	"context"
	"strings"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/domain"
)

// DefaultJurisdiction is used by the keyword resolver when nothing matches.
const DefaultJurisdiction = "los_angeles_county"

// Resolver resolves an address to a jurisdiction id. Implementations return
// an error matching domain.ErrJurisdictionNotFound when the address cannot be
// placed in any jurisdiction.
type Resolver interface {
	Resolve(ctx context.Context, address string) (string, error)
}

// Keyword is one entry of the keyword table.
type Keyword struct {
	Match        string
	Jurisdiction string
}

// DefaultKeywords is the built-in keyword table.
var DefaultKeywords = []Keyword{
	{Match: "los angeles", Jurisdiction: "los_angeles_county"},
	{Match: "maricopa", Jurisdiction: "maricopa_county"},
	{Match: "phoenix", Jurisdiction: "maricopa_county"},
	{Match: "pima", Jurisdiction: "pima_county"},
	{Match: "tucson", Jurisdiction: "pima_county"},
}

// KeywordResolver stands in for a geocoding service. It matches address
// keywords case-insensitively, first match wins, and falls back to a default
// jurisdiction. With an empty fallback unmatched addresses are not found.
type KeywordResolver struct {
	keywords []Keyword
	fallback string
}

// NewKeywordResolver creates a KeywordResolver. A nil table selects DefaultKeywords.
func NewKeywordResolver(keywords []Keyword, fallback string) *KeywordResolver {
	if keywords == nil {
		keywords = DefaultKeywords
	}
	return &KeywordResolver{keywords: keywords, fallback: fallback}
}

func (r *KeywordResolver) Resolve(_ context.Context, address string) (string, error) {
	addr := strings.ToLower(address)
	for _, kw := range r.keywords {
		if strings.Contains(addr, strings.ToLower(kw.Match)) {
			return kw.Jurisdiction, nil
		}
	}
	if r.fallback == "" {
		return "", domain.ErrJurisdictionNotFound
	}
	return r.fallback, nil
}
