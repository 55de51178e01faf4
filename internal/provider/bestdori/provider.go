package bestdori

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"github.com/chu3/chu3-discord-bot-go/internal/util"
	"github.com/chu3/chu3-discord-bot-go/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// assetServer is the server segment used for resource-set image paths. Card
// art is identical across servers, so the Japanese assets are canonical.
const assetServer = "jp"

// Provider serves entity lookups from the wiki API.
type Provider struct {
	client *Client
	logger *zap.Logger
}

func NewProvider(baseURL string, timeout time.Duration, logger *zap.Logger) *Provider {
	return &Provider{
		client: NewClient(baseURL, timeout, logger),
		logger: logger,
	}
}

type cardInfo struct {
	CharacterID     int      `json:"characterId"`
	Prefix          []string `json:"prefix"`
	ResourceSetName string   `json:"resourceSetName"`
}

type characterInfo struct {
	CharacterName []string `json:"characterName"`
	BandID        *int     `json:"bandId"`
}

type bandInfo struct {
	BandName []string `json:"bandName"`
}

type gachaInfo struct {
	GachaName             []string `json:"gachaName"`
	PublishedAt           []string `json:"publishedAt"`
	ClosedAt              []string `json:"closedAt"`
	BannerAssetBundleName string   `json:"bannerAssetBundleName"`
}

// FetchCard loads card info, the owning character's info, and both card art
// variants. The two image fetches run independently; either failing only
// drops that image.
func (p *Provider) FetchCard(ctx context.Context, id int, lang domain.LanguageCode) (*domain.NormalizedEntity, error) {
	var card cardInfo
	if err := p.client.GetJSON(ctx, fmt.Sprintf("/api/cards/%d.json", id), &card); err != nil {
		return nil, p.infoError(err, string(domain.EntityCard), id)
	}

	var character characterInfo
	if err := p.client.GetJSON(ctx, fmt.Sprintf("/api/characters/%d.json", card.CharacterID), &character); err != nil {
		return nil, p.infoError(err, string(domain.EntityCharacter), card.CharacterID)
	}

	var normal, afterTraining []byte
	fetches := pool.New().WithMaxGoroutines(2)
	fetches.Go(func() {
		normal = p.fetchCardArt(ctx, card.ResourceSetName, domain.ImageSlotNormal)
	})
	fetches.Go(func() {
		afterTraining = p.fetchCardArt(ctx, card.ResourceSetName, domain.ImageSlotAfterTraining)
	})
	fetches.Wait()

	entity := &domain.NormalizedEntity{
		Kind: domain.EntityCard,
		ID:   id,
		LocalizedFields: map[string][]string{
			"prefix":        card.Prefix,
			"characterName": character.CharacterName,
		},
		Resolved: map[string]string{},
	}
	if normal != nil {
		entity.Images = append(entity.Images, domain.EntityImage{Slot: domain.ImageSlotNormal, Data: normal})
	}
	if afterTraining != nil {
		entity.Images = append(entity.Images, domain.EntityImage{Slot: domain.ImageSlotAfterTraining, Data: afterTraining})
	}
	return entity, nil
}

// FetchCharacter loads character info, resolves the band display name via the
// full band collection, and attaches the character icon when available.
func (p *Provider) FetchCharacter(ctx context.Context, id int, lang domain.LanguageCode) (*domain.NormalizedEntity, error) {
	var character characterInfo
	if err := p.client.GetJSON(ctx, fmt.Sprintf("/api/characters/%d.json", id), &character); err != nil {
		return nil, p.infoError(err, string(domain.EntityCharacter), id)
	}

	bandName := []string{}
	if character.BandID != nil {
		bands := map[string]bandInfo{}
		if err := p.client.GetJSON(ctx, "/api/bands/all.1.json", &bands); err != nil {
			// The character exists at this point. A missing collection is an
			// upstream problem, never a confirmed-absent entity.
			if stderrors.Is(err, ErrNotExist) {
				return nil, errors.NewUpstreamError("band collection unavailable", "bestdori", 404, err)
			}
			return nil, err
		}
		if band, ok := bands[strconv.Itoa(*character.BandID)]; ok {
			bandName = band.BandName
		}
	}

	entity := &domain.NormalizedEntity{
		Kind: domain.EntityCharacter,
		ID:   id,
		LocalizedFields: map[string][]string{
			"characterName": character.CharacterName,
			"bandName":      bandName,
		},
		Resolved: map[string]string{},
	}

	icon, err := p.client.GetImage(ctx, fmt.Sprintf("/res/icon/character_%d.png", id))
	if err != nil {
		p.logger.Debug("Character icon unavailable", zap.Int("id", id), zap.Error(err))
	} else {
		entity.Images = append(entity.Images, domain.EntityImage{Slot: domain.ImageSlotIcon, Data: icon})
	}
	return entity, nil
}

// FetchGacha loads gacha info and the banner variant for the server derived
// from the invoker's language. Banner failures are tolerated.
func (p *Provider) FetchGacha(ctx context.Context, id int, lang domain.LanguageCode) (*domain.NormalizedEntity, error) {
	var gacha gachaInfo
	if err := p.client.GetJSON(ctx, fmt.Sprintf("/api/gacha/%d.json", id), &gacha); err != nil {
		return nil, p.infoError(err, string(domain.EntityGacha), id)
	}

	entity := &domain.NormalizedEntity{
		Kind: domain.EntityGacha,
		ID:   id,
		LocalizedFields: map[string][]string{
			"gachaName": gacha.GachaName,
		},
		Resolved:    map[string]string{},
		PeriodStart: formatLocalizedTimestamp(gacha.PublishedAt, lang),
		PeriodEnd:   formatLocalizedTimestamp(gacha.ClosedAt, lang),
	}

	if gacha.BannerAssetBundleName != "" {
		path := fmt.Sprintf("/assets/%s/homebanner_rip/%s.png", lang.ServerCode(), gacha.BannerAssetBundleName)
		banner, err := p.client.GetImage(ctx, path)
		if err != nil {
			p.logger.Debug("Gacha banner unavailable",
				zap.Int("id", id),
				zap.String("server", lang.ServerCode()),
				zap.Error(err),
			)
		} else {
			entity.Images = append(entity.Images, domain.EntityImage{Slot: domain.ImageSlotBanner, Data: banner})
		}
	}
	return entity, nil
}

// fetchCardArt fetches one card art variant, treating any failure as an
// absent image.
func (p *Provider) fetchCardArt(ctx context.Context, resourceSetName, variant string) []byte {
	path := fmt.Sprintf("/assets/%s/characters/resourceset/%s_rip/card_%s.png", assetServer, resourceSetName, variant)
	data, err := p.client.GetImage(ctx, path)
	if err != nil {
		p.logger.Debug("Card art unavailable",
			zap.String("resource_set", resourceSetName),
			zap.String("variant", variant),
			zap.Error(err),
		)
		return nil
	}
	return data
}

// infoError maps a 404 on an info endpoint to the typed not-found error;
// anything else is already an upstream error.
func (p *Provider) infoError(err error, kind string, id int) error {
	if stderrors.Is(err, ErrNotExist) {
		return errors.NewNotFoundError(kind, id)
	}
	return err
}

// formatLocalizedTimestamp selects the locale entry from an array of
// millisecond-epoch strings and renders it as a UTC timestamp. Entries that
// do not parse are shown verbatim; empty arrays render as "N/A".
func formatLocalizedTimestamp(values []string, lang domain.LanguageCode) string {
	selected := domain.SelectLocalized(values, lang)
	if selected == domain.ValueNotAvailable {
		return selected
	}
	ms, err := strconv.ParseInt(selected, 10, 64)
	if err != nil {
		return selected
	}
	return util.FormatEpochMillis(ms)
}
