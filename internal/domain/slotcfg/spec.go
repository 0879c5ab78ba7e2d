package slotcfg

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Orientation values accepted by slot constraints.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
	OrientationSquare    = "square"
)

// Slot policy values.
const (
	PolicyConsentRequired = "consent_required"
	PolicyOptional        = "optional"
)

var allowedOrientations = map[string]struct{}{
	OrientationPortrait:  {},
	OrientationLandscape: {},
	OrientationSquare:    {},
}

var allowedPolicies = map[string]struct{}{
	PolicyConsentRequired: {},
	PolicyOptional:        {},
}

// SlotConstraints carries optional technical requirements for one slot.
type SlotConstraints struct {
	Orientation        string  `json:"orientation,omitempty"`
	MinPixelsShortSide int     `json:"min_pixels_short_side,omitempty"`
	MaxSizeMB          float64 `json:"max_size_mb,omitempty"`
}

// SlotSpec describes one named shot requirement within an archetype.
type SlotSpec struct {
	Key         string           `json:"key"`
	Label       string           `json:"label"`
	Count       int              `json:"count"`
	Required    bool             `json:"required"`
	Constraints *SlotConstraints `json:"constraints,omitempty"`
	Policy      string           `json:"policy,omitempty"`
}

// ArchetypeSpec is the requirement template for one video style.
type ArchetypeSpec struct {
	MinTotal    int        `json:"min_total"`
	MaxTotal    int        `json:"max_total"`
	MaxGenerate int        `json:"max_generate"`
	Slots       []SlotSpec `json:"slots"`
}

// Normalize fills server defaults on a spec before validation. A slot with
// an empty label gets a title-cased rendering of its key, and a recommended
// count below one is raised to one.
func (s *ArchetypeSpec) Normalize() {
	if s == nil {
		return
	}
	titler := cases.Title(language.Und)
	for i := range s.Slots {
		slot := &s.Slots[i]
		slot.Key = strings.TrimSpace(slot.Key)
		if strings.TrimSpace(slot.Label) == "" {
			slot.Label = titler.String(strings.ReplaceAll(slot.Key, "_", " "))
		}
		if slot.Count < 1 {
			slot.Count = 1
		}
	}
}

// Validate ensures the spec satisfies the required contract before it is
// used to judge a submission. MaxGenerate above MaxTotal is rejected here so
// the generation ceiling can never become vacuous through misconfiguration.
func (s ArchetypeSpec) Validate() error {
	if s.MinTotal < 1 {
		return fmt.Errorf("min_total must be at least 1")
	}
	if s.MaxTotal < s.MinTotal {
		return fmt.Errorf("max_total (%d) must not be below min_total (%d)", s.MaxTotal, s.MinTotal)
	}
	if s.MaxGenerate < 1 {
		return fmt.Errorf("max_generate must be at least 1")
	}
	if s.MaxGenerate > s.MaxTotal {
		return fmt.Errorf("max_generate (%d) must not exceed max_total (%d)", s.MaxGenerate, s.MaxTotal)
	}
	if len(s.Slots) == 0 {
		return fmt.Errorf("at least one slot is required")
	}
	seen := make(map[string]struct{}, len(s.Slots))
	for _, slot := range s.Slots {
		key := strings.TrimSpace(slot.Key)
		if key == "" {
			return fmt.Errorf("slot key is required")
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate slot key %q", key)
		}
		seen[key] = struct{}{}
		if slot.Policy != "" {
			if _, ok := allowedPolicies[slot.Policy]; !ok {
				return fmt.Errorf("slot %q: policy must be one of consent_required, optional", key)
			}
		}
		if slot.Constraints != nil && slot.Constraints.Orientation != "" {
			if _, ok := allowedOrientations[slot.Constraints.Orientation]; !ok {
				return fmt.Errorf("slot %q: orientation must be one of portrait, landscape, square", key)
			}
		}
	}
	return nil
}

// Slot returns the slot spec for the given key, or nil when absent.
func (s *ArchetypeSpec) Slot(key string) *SlotSpec {
	for i := range s.Slots {
		if s.Slots[i].Key == key {
			return &s.Slots[i]
		}
	}
	return nil
}

// RequiredSlots returns the required slots in declaration order.
func (s *ArchetypeSpec) RequiredSlots() []SlotSpec {
	var out []SlotSpec
	for _, slot := range s.Slots {
		if slot.Required {
			out = append(out, slot)
		}
	}
	return out
}
