package domain

// EntityKind identifies the game-data entity a command looks up.
type EntityKind string

const (
	EntityCard      EntityKind = "card"
	EntityCharacter EntityKind = "character"
	EntityGacha     EntityKind = "gacha"
)

// Image slot names shared by both providers. Attachment filenames are derived
// from kind + id + slot, so slots must stay stable.
const (
	ImageSlotNormal        = "normal"
	ImageSlotAfterTraining = "after_training"
	ImageSlotIcon          = "icon"
	ImageSlotBanner        = "banner"
)

// EntityImage is one fetched image blob for a named slot. Slots whose fetch
// failed are simply never appended, never represented with nil Data.
type EntityImage struct {
	Slot string
	Data []byte
}

// NormalizedEntity is the single shape both providers produce. Locale-array
// valued attributes stay as raw arrays so the reply assembler can apply the
// locale selector; attributes the provider already resolved to one language
// live in Resolved.
type NormalizedEntity struct {
	Kind EntityKind
	ID   int

	// LocalizedFields holds attribute name → locale-ordered value array.
	LocalizedFields map[string][]string

	// Resolved holds attribute name → already-localized scalar value.
	Resolved map[string]string

	// Images holds successfully fetched blobs in presentation order.
	Images []EntityImage

	// Pickups lists featured card descriptions for gacha entities.
	Pickups []string

	// PeriodStart and PeriodEnd are human-readable UTC timestamps, or "N/A".
	PeriodStart string
	PeriodEnd   string
}

// Image returns the blob stored for slot, or nil if the slot is absent.
func (e *NormalizedEntity) Image(slot string) []byte {
	for _, img := range e.Images {
		if img.Slot == slot {
			return img.Data
		}
	}
	return nil
}

// ReplyField is one label/value pair in a reply embed.
type ReplyField struct {
	Label  string
	Value  string
	Inline bool
}

// ReplyAttachment is one named binary attachment.
type ReplyAttachment struct {
	Filename string
	Data     []byte
}

// ReplyPayload is the platform-independent reply produced by the assembler:
// title, ordered fields, and zero or more image attachments. A fresh payload
// is built per invocation.
type ReplyPayload struct {
	TitleText   string
	Description string
	Color       int
	Fields      []ReplyField
	Images      []ReplyAttachment
	FooterText  string

	// ThumbnailFilename and ImageFilename name attachments the renderer
	// should surface as the embed thumbnail and main image. Both must match
	// an entry in Images.
	ThumbnailFilename string
	ImageFilename     string
}
