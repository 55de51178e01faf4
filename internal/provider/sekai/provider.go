package sekai

import (
	"context"
	"fmt"
	"time"

	"github.com/chu3/chu3-discord-bot-go/internal/constants"
	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"github.com/chu3/chu3-discord-bot-go/internal/util"
	"github.com/chu3/chu3-discord-bot-go/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Collection file names on the mirror.
const (
	fileCards        = "cards.json"
	fileCharacters   = "gameCharacters.json"
	fileGachas       = "gachas.json"
	fileUnitProfiles = "unitProfiles.json"
)

// Provider serves entity lookups by joining whole-collection snapshots from
// the raw-file mirror. Collections are modest in size, so joins are linear
// scans over the decoded slices.
type Provider struct {
	client *Client
	logger *zap.Logger
}

func NewProvider(mirrorBaseURL, assetBaseURL string, timeout time.Duration, logger *zap.Logger) *Provider {
	return &Provider{
		client: NewClient(mirrorBaseURL, assetBaseURL, timeout, logger),
		logger: logger,
	}
}

type gameCharacter struct {
	ID         int    `json:"id"`
	Unit       string `json:"unit"`
	FirstName  string `json:"firstName"`
	GivenName  string `json:"givenName"`
	ResourceID int    `json:"resourceId"`
}

type unitProfile struct {
	Unit     string `json:"unit"`
	UnitName string `json:"unitName"`
}

type card struct {
	ID              int    `json:"id"`
	CharacterID     int    `json:"characterId"`
	Prefix          string `json:"prefix"`
	AssetbundleName string `json:"assetbundleName"`
}

type gacha struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	StartAt         *int64 `json:"startAt"`
	EndAt           *int64 `json:"endAt"`
	AssetbundleName string `json:"assetbundleName"`
	GachaPickups    []struct {
		CardID int `json:"cardId"`
	} `json:"gachaPickups"`
}

// FetchCard joins the card and character collections and attaches both card
// art variants when the asset store has them.
func (p *Provider) FetchCard(ctx context.Context, id int, lang domain.LanguageCode) (*domain.NormalizedEntity, error) {
	var cards []card
	var characters []gameCharacter

	fetches := pool.New().WithErrors().WithMaxGoroutines(constants.FetchConcurrency)
	fetches.Go(func() error { return p.client.GetCollection(ctx, lang, fileCards, &cards) })
	fetches.Go(func() error { return p.client.GetCollection(ctx, lang, fileCharacters, &characters) })
	if err := fetches.Wait(); err != nil {
		return nil, err
	}

	found := findCard(cards, id)
	if found == nil {
		return nil, errors.NewNotFoundError(string(domain.EntityCard), id)
	}

	entity := &domain.NormalizedEntity{
		Kind: domain.EntityCard,
		ID:   id,
		Resolved: map[string]string{
			"prefix":        found.Prefix,
			"characterName": characterDisplayName(characters, found.CharacterID),
		},
	}

	var normal, afterTraining []byte
	art := pool.New().WithMaxGoroutines(2)
	art.Go(func() { normal = p.fetchCardArt(ctx, found.AssetbundleName, "card_normal") })
	art.Go(func() { afterTraining = p.fetchCardArt(ctx, found.AssetbundleName, "card_after_training") })
	art.Wait()

	if normal != nil {
		entity.Images = append(entity.Images, domain.EntityImage{Slot: domain.ImageSlotNormal, Data: normal})
	}
	if afterTraining != nil {
		entity.Images = append(entity.Images, domain.EntityImage{Slot: domain.ImageSlotAfterTraining, Data: afterTraining})
	}
	return entity, nil
}

// FetchCharacter joins the character and unit-profile collections and
// attaches the trimmed character portrait when available.
func (p *Provider) FetchCharacter(ctx context.Context, id int, lang domain.LanguageCode) (*domain.NormalizedEntity, error) {
	var characters []gameCharacter
	var units []unitProfile

	fetches := pool.New().WithErrors().WithMaxGoroutines(constants.FetchConcurrency)
	fetches.Go(func() error { return p.client.GetCollection(ctx, lang, fileCharacters, &characters) })
	fetches.Go(func() error { return p.client.GetCollection(ctx, lang, fileUnitProfiles, &units) })
	if err := fetches.Wait(); err != nil {
		return nil, err
	}

	var found *gameCharacter
	for i := range characters {
		if characters[i].ID == id {
			found = &characters[i]
			break
		}
	}
	if found == nil {
		return nil, errors.NewNotFoundError(string(domain.EntityCharacter), id)
	}

	unitName := domain.ValueNotAvailable
	for _, u := range units {
		if u.Unit == found.Unit && u.UnitName != "" {
			unitName = u.UnitName
			break
		}
	}

	entity := &domain.NormalizedEntity{
		Kind: domain.EntityCharacter,
		ID:   id,
		Resolved: map[string]string{
			"characterName": util.JoinNonEmpty(" ", found.FirstName, found.GivenName),
			"bandName":      unitName,
		},
	}

	portrait, err := p.client.GetAsset(ctx, fmt.Sprintf("/character/character_trim/chr_trim_%d.png", found.ResourceID))
	if err != nil {
		p.logger.Debug("Character portrait unavailable", zap.Int("id", id), zap.Error(err))
	} else {
		entity.Images = append(entity.Images, domain.EntityImage{Slot: domain.ImageSlotIcon, Data: portrait})
	}
	return entity, nil
}

// FetchGacha joins the gacha, card and character collections, renders the
// banner from the gacha's asset bundle, and lists the first pickups as
// "title (character)" lines.
func (p *Provider) FetchGacha(ctx context.Context, id int, lang domain.LanguageCode) (*domain.NormalizedEntity, error) {
	var gachas []gacha
	var cards []card
	var characters []gameCharacter

	fetches := pool.New().WithErrors().WithMaxGoroutines(constants.FetchConcurrency)
	fetches.Go(func() error { return p.client.GetCollection(ctx, lang, fileGachas, &gachas) })
	fetches.Go(func() error { return p.client.GetCollection(ctx, lang, fileCards, &cards) })
	fetches.Go(func() error { return p.client.GetCollection(ctx, lang, fileCharacters, &characters) })
	if err := fetches.Wait(); err != nil {
		return nil, err
	}

	var found *gacha
	for i := range gachas {
		if gachas[i].ID == id {
			found = &gachas[i]
			break
		}
	}
	if found == nil {
		return nil, errors.NewNotFoundError(string(domain.EntityGacha), id)
	}

	entity := &domain.NormalizedEntity{
		Kind: domain.EntityGacha,
		ID:   id,
		Resolved: map[string]string{
			"gachaName": found.Name,
		},
		PeriodStart: util.FormatEpochMillisPtr(found.StartAt),
		PeriodEnd:   util.FormatEpochMillisPtr(found.EndAt),
		Pickups:     p.pickupLines(found, cards, characters),
	}

	if found.AssetbundleName != "" {
		path := fmt.Sprintf("/homebanner/%s_rip/%s.png", found.AssetbundleName, found.AssetbundleName)
		banner, err := p.client.GetAsset(ctx, path)
		if err != nil {
			p.logger.Debug("Gacha banner unavailable", zap.Int("id", id), zap.Error(err))
		} else {
			entity.Images = append(entity.Images, domain.EntityImage{Slot: domain.ImageSlotBanner, Data: banner})
		}
	}
	return entity, nil
}

func (p *Provider) fetchCardArt(ctx context.Context, assetbundleName, variant string) []byte {
	path := fmt.Sprintf("/character/member/%s_rip/%s.png", assetbundleName, variant)
	data, err := p.client.GetAsset(ctx, path)
	if err != nil {
		p.logger.Debug("Card art unavailable",
			zap.String("assetbundle", assetbundleName),
			zap.String("variant", variant),
			zap.Error(err),
		)
		return nil
	}
	return data
}

// pickupLines renders up to MaxGachaPickups featured cards. A pickup whose
// card record is missing from the snapshot falls back to the bare card id.
func (p *Provider) pickupLines(g *gacha, cards []card, characters []gameCharacter) []string {
	limit := len(g.GachaPickups)
	if limit > constants.MaxGachaPickups {
		limit = constants.MaxGachaPickups
	}

	lines := make([]string, 0, limit)
	for _, pickup := range g.GachaPickups[:limit] {
		pickedCard := findCard(cards, pickup.CardID)
		if pickedCard == nil {
			lines = append(lines, fmt.Sprintf("%d", pickup.CardID))
			continue
		}
		title := pickedCard.Prefix
		if title == "" {
			title = domain.ValueNotAvailable
		}
		lines = append(lines, fmt.Sprintf("%s (%s)", title, characterDisplayName(characters, pickedCard.CharacterID)))
	}
	return lines
}

func findCard(cards []card, id int) *card {
	for i := range cards {
		if cards[i].ID == id {
			return &cards[i]
		}
	}
	return nil
}

func characterDisplayName(characters []gameCharacter, id int) string {
	for _, ch := range characters {
		if ch.ID == id {
			if name := util.JoinNonEmpty(" ", ch.FirstName, ch.GivenName); name != "" {
				return name
			}
			break
		}
	}
	return domain.ValueNotAvailable
}
