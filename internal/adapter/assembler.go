package adapter

import (
	"fmt"
	"strings"

	"github.com/chu3/chu3-discord-bot-go/internal/constants"
	"github.com/chu3/chu3-discord-bot-go/internal/domain"
)

// TextSource renders localized templated messages.
type TextSource interface {
	Text(lang domain.LanguageCode, section, key string, placeholders map[string]any) string
}

// ReplyAssembler turns a normalized entity into the reply payload the
// platform layer renders. Missing images are omitted, never fatal.
type ReplyAssembler struct {
	texts TextSource
}

func NewReplyAssembler(texts TextSource) *ReplyAssembler {
	return &ReplyAssembler{texts: texts}
}

// Assemble builds the reply for an entity in the invoker's language.
func (a *ReplyAssembler) Assemble(entity *domain.NormalizedEntity, lang domain.LanguageCode) *domain.ReplyPayload {
	switch entity.Kind {
	case domain.EntityCharacter:
		return a.assembleCharacter(entity, lang)
	case domain.EntityGacha:
		return a.assembleGacha(entity, lang)
	default:
		return a.assembleCard(entity, lang)
	}
}

func (a *ReplyAssembler) assembleCard(entity *domain.NormalizedEntity, lang domain.LanguageCode) *domain.ReplyPayload {
	payload := &domain.ReplyPayload{
		TitleText: a.texts.Text(lang, "card", "EMBED_TITLE", map[string]any{"CARD_ID": entity.ID}),
		Color:     constants.EmbedColors.Card,
		Fields: []domain.ReplyField{
			{Label: a.texts.Text(lang, "card", "FIELD_TITLE", nil), Value: a.fieldValue(entity, "prefix", lang)},
			{Label: a.texts.Text(lang, "card", "FIELD_CHARACTER", nil), Value: a.fieldValue(entity, "characterName", lang)},
		},
	}

	a.attach(payload, entity, domain.ImageSlotNormal, fmt.Sprintf("card_%d_normal.png", entity.ID))
	a.attach(payload, entity, domain.ImageSlotAfterTraining, fmt.Sprintf("card_%d_after.png", entity.ID))
	return payload
}

func (a *ReplyAssembler) assembleCharacter(entity *domain.NormalizedEntity, lang domain.LanguageCode) *domain.ReplyPayload {
	name := a.fieldValue(entity, "characterName", lang)

	payload := &domain.ReplyPayload{
		TitleText: a.texts.Text(lang, "character", "EMBED_TITLE", map[string]any{
			"CHAR_ID": entity.ID,
			"NAME":    name,
		}),
		Color: constants.EmbedColors.Character,
		Fields: []domain.ReplyField{
			{Label: a.texts.Text(lang, "character", "FIELD_BAND", nil), Value: a.fieldValue(entity, "bandName", lang)},
		},
	}

	filename := fmt.Sprintf("char_%d_icon.png", entity.ID)
	if a.attach(payload, entity, domain.ImageSlotIcon, filename) {
		payload.ThumbnailFilename = filename
	}
	return payload
}

func (a *ReplyAssembler) assembleGacha(entity *domain.NormalizedEntity, lang domain.LanguageCode) *domain.ReplyPayload {
	payload := &domain.ReplyPayload{
		TitleText: a.texts.Text(lang, "gacha", "EMBED_TITLE", map[string]any{"GACHA_ID": entity.ID}),
		Color:     constants.EmbedColors.Gacha,
		Fields: []domain.ReplyField{
			{Label: a.texts.Text(lang, "gacha", "FIELD_NAME", nil), Value: a.fieldValue(entity, "gachaName", lang)},
			{Label: a.texts.Text(lang, "gacha", "FIELD_PERIOD", nil), Value: fmt.Sprintf("%s - %s", entity.PeriodStart, entity.PeriodEnd)},
		},
	}

	if len(entity.Pickups) > 0 {
		payload.Fields = append(payload.Fields, domain.ReplyField{
			Label: a.texts.Text(lang, "gacha", "FIELD_PICKUPS", nil),
			Value: strings.Join(entity.Pickups, "\n"),
		})
	}

	filename := fmt.Sprintf("gacha_%d_banner.png", entity.ID)
	if a.attach(payload, entity, domain.ImageSlotBanner, filename) {
		payload.ImageFilename = filename
	}
	return payload
}

// fieldValue resolves an attribute either through the locale selector (when
// the provider kept the raw locale array) or from the pre-resolved scalars.
func (a *ReplyAssembler) fieldValue(entity *domain.NormalizedEntity, name string, lang domain.LanguageCode) string {
	if values, ok := entity.LocalizedFields[name]; ok {
		return domain.SelectLocalized(values, lang)
	}
	if v := entity.Resolved[name]; v != "" {
		return v
	}
	return domain.ValueNotAvailable
}

// attach appends the named attachment when the entity carries the slot,
// reporting whether anything was added.
func (a *ReplyAssembler) attach(payload *domain.ReplyPayload, entity *domain.NormalizedEntity, slot, filename string) bool {
	data := entity.Image(slot)
	if data == nil {
		return false
	}
	payload.Images = append(payload.Images, domain.ReplyAttachment{Filename: filename, Data: data})
	return true
}
