package slotcheck

import (
	"sort"

	"server/internal/domain/slotcfg"
)

// Slot weights for the fill pass.
const (
	weightRequired      = 1.0
	weightOptionalMulti = 0.8
	weightOptional      = 0.6
)

// selectForGeneration picks at most spec.MaxGenerate filenames to forward to
// the paid generation step. Required slots are each given one image first, in
// declaration order; the remaining budget goes to the highest weighted-score
// candidates. All sorts are stable over first-seen manifest order, so equal
// scores resolve deterministically.
func selectForGeneration(spec *slotcfg.ArchetypeSpec, manifest []slotcfg.ManifestEntry, scored []slotcfg.ImageMetadata) []string {
	scoreByFile := make(map[string]float64, len(scored))
	for _, img := range scored {
		if img.QualityScore != nil {
			scoreByFile[img.Filename] = *img.QualityScore
		}
	}

	selected := make([]string, 0, spec.MaxGenerate)
	picked := make(map[string]struct{}, spec.MaxGenerate)

	take := func(file string) {
		selected = append(selected, file)
		picked[file] = struct{}{}
	}

	// Required pass: one best-scored image per required slot.
	for _, slot := range spec.Slots {
		if !slot.Required {
			continue
		}
		if len(selected) >= spec.MaxGenerate {
			break
		}
		var candidates []slotcfg.ManifestEntry
		for _, entry := range manifest {
			if entry.Slot == slot.Key {
				candidates = append(candidates, entry)
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return scoreByFile[candidates[i].File] > scoreByFile[candidates[j].File]
		})
		for _, entry := range candidates {
			if _, dup := picked[entry.File]; dup {
				continue
			}
			take(entry.File)
			break
		}
	}

	// Fill pass: remaining candidates ranked by score * slot weight.
	var rest []slotcfg.ManifestEntry
	for _, entry := range manifest {
		if _, dup := picked[entry.File]; !dup {
			rest = append(rest, entry)
		}
	}
	weighted := func(entry slotcfg.ManifestEntry) float64 {
		return scoreByFile[entry.File] * slotWeight(spec.Slot(entry.Slot))
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return weighted(rest[i]) > weighted(rest[j])
	})
	for _, entry := range rest {
		if len(selected) >= spec.MaxGenerate {
			break
		}
		if _, dup := picked[entry.File]; dup {
			continue
		}
		take(entry.File)
	}

	return selected
}

func slotWeight(slot *slotcfg.SlotSpec) float64 {
	switch {
	case slot == nil:
		return weightOptional
	case slot.Required:
		return weightRequired
	case slot.Count >= 2:
		return weightOptionalMulti
	default:
		return weightOptional
	}
}
