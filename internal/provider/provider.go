package provider

import (
	"context"

	"github.com/chu3/chu3-discord-bot-go/internal/domain"
)

// EntityProvider is the capability both upstream data sources implement. Each
// fetch returns the shared normalized shape; the language steers locale
// selection for sources that serve per-language data and asset variants.
type EntityProvider interface {
	FetchCard(ctx context.Context, id int, lang domain.LanguageCode) (*domain.NormalizedEntity, error)
	FetchCharacter(ctx context.Context, id int, lang domain.LanguageCode) (*domain.NormalizedEntity, error)
	FetchGacha(ctx context.Context, id int, lang domain.LanguageCode) (*domain.NormalizedEntity, error)
}

// Selector picks the concrete provider for a routed identifier.
type Selector struct {
	primary EntityProvider
	mirror  EntityProvider
}

func NewSelector(primary, mirror EntityProvider) *Selector {
	return &Selector{primary: primary, mirror: mirror}
}

// For returns the provider serving the identifier's source.
func (s *Selector) For(ident Identifier) EntityProvider {
	if ident.Source == SourceMirror {
		return s.mirror
	}
	return s.primary
}
