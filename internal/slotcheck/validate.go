package slotcheck

import (
	"fmt"

	"server/internal/domain/slotcfg"
)

// squareTolerance is the relative width/height difference under which an
// image still counts as square.
const squareTolerance = 0.1

// validateBasics applies the blocking requirement checks and collects the
// advisory per-image warnings. Errors block the submission; warnings never do.
func validateBasics(spec *slotcfg.ArchetypeSpec, manifest []slotcfg.ManifestEntry, images []slotcfg.ImageMetadata) (errs, warns []string) {
	errs = make([]string, 0)
	warns = make([]string, 0)

	if len(manifest) < spec.MinTotal {
		errs = append(errs, fmt.Sprintf("at least %d images are required, got %d", spec.MinTotal, len(manifest)))
	}
	if len(manifest) > spec.MaxTotal {
		warns = append(warns, fmt.Sprintf("more than %d images uploaded (%d); extras beyond the generation budget are ignored", spec.MaxTotal, len(manifest)))
	}

	perSlot := countPerSlot(manifest)
	for _, slot := range spec.Slots {
		if slot.Required && perSlot[slot.Key] == 0 {
			errs = append(errs, fmt.Sprintf("required slot %q (%s) has no images assigned", slot.Label, slot.Key))
		}
	}

	imageByFile := make(map[string]slotcfg.ImageMetadata, len(images))
	for _, img := range images {
		imageByFile[img.Filename] = img
	}

	for _, entry := range manifest {
		slot := spec.Slot(entry.Slot)
		if slot == nil {
			warns = append(warns, fmt.Sprintf("file %q references unknown slot %q", entry.File, entry.Slot))
			continue
		}
		img, ok := imageByFile[entry.File]
		if !ok {
			warns = append(warns, fmt.Sprintf("no image metadata supplied for %q", entry.File))
			continue
		}
		warns = append(warns, constraintWarnings(*slot, img)...)
	}

	// Consent stays advisory even when the flag is explicitly false. Upgrading
	// this to a hard block would change which submissions are accepted.
	for _, slot := range spec.Slots {
		if slot.Policy == slotcfg.PolicyConsentRequired && perSlot[slot.Key] > 0 {
			warns = append(warns, fmt.Sprintf("slot %q (%s) may contain identifiable people: portrait and copyright consent is required before publishing", slot.Label, slot.Key))
		}
	}

	return errs, warns
}

func constraintWarnings(slot slotcfg.SlotSpec, img slotcfg.ImageMetadata) []string {
	c := slot.Constraints
	if c == nil {
		return nil
	}
	var warns []string
	if c.MinPixelsShortSide > 0 {
		short := img.Width
		if img.Height < short {
			short = img.Height
		}
		if short < c.MinPixelsShortSide {
			warns = append(warns, fmt.Sprintf("%s: short side %dpx is below the recommended %dpx for slot %q", img.Filename, short, c.MinPixelsShortSide, slot.Key))
		}
	}
	if c.Orientation != "" {
		if got := orientationOf(img.Width, img.Height); got != c.Orientation {
			warns = append(warns, fmt.Sprintf("%s: %s image supplied where %s is recommended for slot %q", img.Filename, got, c.Orientation, slot.Key))
		}
	}
	if c.MaxSizeMB > 0 {
		sizeMB := float64(img.FileSizeBytes) / (1024 * 1024)
		if sizeMB > c.MaxSizeMB {
			warns = append(warns, fmt.Sprintf("%s: file size %.1fMB exceeds the %.1fMB recommended for slot %q", img.Filename, sizeMB, c.MaxSizeMB, slot.Key))
		}
	}
	return warns
}

func orientationOf(width, height int) string {
	max := width
	if height > max {
		max = height
	}
	if max > 0 {
		diff := width - height
		if diff < 0 {
			diff = -diff
		}
		if float64(diff)/float64(max) < squareTolerance {
			return slotcfg.OrientationSquare
		}
	}
	if height > width {
		return slotcfg.OrientationPortrait
	}
	return slotcfg.OrientationLandscape
}

func countPerSlot(manifest []slotcfg.ManifestEntry) map[string]int {
	counts := make(map[string]int, len(manifest))
	for _, entry := range manifest {
		counts[entry.Slot]++
	}
	return counts
}
