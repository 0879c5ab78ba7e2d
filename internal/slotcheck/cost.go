package slotcheck

import (
	"fmt"
	"math"

	"server/internal/domain/slotcfg"
)

// Fixed per-shot assumptions for the external generation provider.
const (
	costPerShotUSD    = 1.25
	minutesPerShot    = 2.5
	slotOveruseFactor = 2
)

func estimateCost(selectedCount int) slotcfg.CostEstimate {
	return slotcfg.CostEstimate{
		TotalShots:            selectedCount,
		EstimatedCostUSD:      float64(selectedCount) * costPerShotUSD,
		ProcessingTimeMinutes: int(math.Ceil(float64(selectedCount) * minutesPerShot)),
	}
}

// advisoryWarnings reports slot usage oddities that never block a submission:
// slots loaded with far more images than recommended, and optional slots left
// empty.
func advisoryWarnings(spec *slotcfg.ArchetypeSpec, manifest []slotcfg.ManifestEntry) []string {
	perSlot := countPerSlot(manifest)
	var warns []string
	for _, slot := range spec.Slots {
		n := perSlot[slot.Key]
		if slot.Count > 0 && n > slotOveruseFactor*slot.Count {
			warns = append(warns, fmt.Sprintf("slot %q (%s) has %d images; only %d are recommended", slot.Label, slot.Key, n, slot.Count))
		}
		if !slot.Required && n == 0 {
			warns = append(warns, fmt.Sprintf("unused optional slot: %s", slot.Label))
		}
	}
	return warns
}
