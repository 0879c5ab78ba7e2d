package slotcfg

// ArchetypeEnergyMontage is also the fallback when an unknown archetype is
// requested.
const (
	ArchetypeEnergyMontage    = "energy_montage"
	ArchetypeStoryTour        = "story_tour"
	ArchetypeAmenitySpotlight = "amenity_spotlight"
)

// DefaultSpecs returns the built-in archetype templates used whenever no
// weekly pack is active or the pack omits the requested archetype. The map
// is rebuilt on every call so callers may mutate their copy freely.
func DefaultSpecs() map[string]ArchetypeSpec {
	return map[string]ArchetypeSpec{
		ArchetypeEnergyMontage: {
			MinTotal:    10,
			MaxTotal:    20,
			MaxGenerate: 8,
			Slots: []SlotSpec{
				{Key: "hero", Label: "Hero Shot", Count: 1, Required: true, Constraints: &SlotConstraints{MinPixelsShortSide: 1080}},
				{Key: "exterior_wide", Label: "Exterior Wide", Count: 2, Required: true, Constraints: &SlotConstraints{Orientation: OrientationLandscape, MinPixelsShortSide: 1080}},
				{Key: "interior_main", Label: "Main Interior", Count: 2, Required: true, Constraints: &SlotConstraints{MinPixelsShortSide: 1080}},
				{Key: "amenity", Label: "Amenity", Count: 2, Required: true},
				{Key: "lifestyle", Label: "Lifestyle", Count: 2, Policy: PolicyConsentRequired},
				{Key: "detail", Label: "Detail", Count: 2, Policy: PolicyOptional, Constraints: &SlotConstraints{MaxSizeMB: 10}},
			},
		},
		ArchetypeStoryTour: {
			MinTotal:    8,
			MaxTotal:    16,
			MaxGenerate: 6,
			Slots: []SlotSpec{
				{Key: "hero", Label: "Hero Shot", Count: 1, Required: true, Constraints: &SlotConstraints{MinPixelsShortSide: 1080}},
				{Key: "exterior_wide", Label: "Exterior Wide", Count: 1, Required: true, Constraints: &SlotConstraints{Orientation: OrientationLandscape}},
				{Key: "living_space", Label: "Living Space", Count: 2, Required: true},
				{Key: "bedroom", Label: "Bedroom", Count: 1, Required: true},
				{Key: "bathroom", Label: "Bathroom", Count: 1, Policy: PolicyOptional},
				{Key: "view", Label: "View", Count: 2, Policy: PolicyOptional, Constraints: &SlotConstraints{Orientation: OrientationLandscape}},
				{Key: "host_welcome", Label: "Host Welcome", Count: 1, Policy: PolicyConsentRequired},
			},
		},
		ArchetypeAmenitySpotlight: {
			MinTotal:    6,
			MaxTotal:    12,
			MaxGenerate: 5,
			Slots: []SlotSpec{
				{Key: "hero", Label: "Hero Shot", Count: 1, Required: true, Constraints: &SlotConstraints{MinPixelsShortSide: 1080}},
				{Key: "amenity_closeup", Label: "Amenity Close-up", Count: 2, Required: true},
				{Key: "amenity_context", Label: "Amenity In Context", Count: 2, Required: true},
				{Key: "ambience", Label: "Ambience", Count: 2, Policy: PolicyOptional},
			},
		},
	}
}
