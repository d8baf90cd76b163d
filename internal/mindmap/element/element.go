// Package element models the mindmap nodes shown as floating spheres on the
// home page.
//
// Elements come from the CMS collection named by Collection. They are read once
// per page render into an ordered Sequence and are never mutated afterwards; the
// position of an element in that sequence is the only input the layout engine
// derives placement from.
package element

import (
	"net/url"
	"strings"
	"time"
)

// Collection is the CMS collection holding mindmap elements.
const Collection = "mindmapelements"

// DefaultAnimationSpeedSeconds is the drift cycle used when an element does not
// carry a positive animation speed.
const DefaultAnimationSpeedSeconds = 20

// Record is the CMS wire shape of one mindmap element.
type Record struct {
	ID             string     `json:"_id"`
	CreatedDate    *time.Time `json:"_createdDate,omitempty"`
	UpdatedDate    *time.Time `json:"_updatedDate,omitempty"`
	Label          string     `json:"label,omitempty"`
	Description    string     `json:"description,omitempty"`
	AnimationSpeed *float64   `json:"animationSpeed,omitempty"`
	SphereImage    string     `json:"sphereImage,omitempty"`
	LinkURL        string     `json:"linkUrl,omitempty"`
}

// Element is one visual node of the home page hero.
type Element struct {
	ID          string
	Index       int
	Label       string
	Description string
	ImageRef    string
	// LinkURL is empty when clicking the sphere should do nothing.
	LinkURL string
	// AnimationSpeedSeconds is zero when the record did not set a positive speed.
	AnimationSpeedSeconds float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasLink reports whether the element opens an external page when clicked.
func (e Element) HasLink() bool {
	return e.LinkURL != ""
}

// HasImage reports whether the element carries a displayable image.
func (e Element) HasImage() bool {
	return e.ImageRef != ""
}

// DisplayLabel returns the label used for image alt text and tooltips.
func (e Element) DisplayLabel() string {
	if e.Label != "" {
		return e.Label
	}
	return "Mindmap Node"
}

// Sequence is the ordered, read-only result of one element fetch.
type Sequence struct {
	items []Element
}

// FromRecords converts CMS records into a sequence, assigning each element its
// 0-based position. The input slice is not retained.
func FromRecords(records []Record) Sequence {
	if len(records) == 0 {
		return Sequence{}
	}
	items := make([]Element, 0, len(records))
	for _, record := range records {
		items = append(items, fromRecord(record, len(items)))
	}
	return Sequence{items: items}
}

// Len returns the number of elements.
func (s Sequence) Len() int {
	return len(s.items)
}

// At returns the element at index i.
func (s Sequence) At(i int) Element {
	return s.items[i]
}

// Elements returns a copy of the ordered elements.
func (s Sequence) Elements() []Element {
	out := make([]Element, len(s.items))
	copy(out, s.items)
	return out
}

func fromRecord(record Record, index int) Element {
	el := Element{
		ID:          strings.TrimSpace(record.ID),
		Index:       index,
		Label:       strings.TrimSpace(record.Label),
		Description: strings.TrimSpace(record.Description),
		ImageRef:    strings.TrimSpace(record.SphereImage),
		LinkURL:     normalizeLink(record.LinkURL),
	}
	if record.AnimationSpeed != nil && *record.AnimationSpeed > 0 {
		el.AnimationSpeedSeconds = *record.AnimationSpeed
	}
	if record.CreatedDate != nil {
		el.CreatedAt = record.CreatedDate.UTC()
	}
	if record.UpdatedDate != nil {
		el.UpdatedAt = record.UpdatedDate.UTC()
	}
	return el
}

// normalizeLink keeps absolute http(s) URLs only.
func normalizeLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed.String()
	default:
		return ""
	}
}
