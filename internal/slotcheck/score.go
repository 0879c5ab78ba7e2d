package slotcheck

import "server/internal/domain/slotcfg"

// Scoring weights. The score is a ranking heuristic over technical facts
// only; it never inspects image content.
const (
	scoreBase = 0.5

	resolutionWeight    = 0.3
	referencePixelCount = 1920.0 * 1080.0

	sizeWeight  = 0.2
	sizeRampLow = 0.5 // MB; below this a file earns no size credit
	sizeRampLen = 4.0 // MB; credit saturates at sizeRampLow + sizeRampLen

	aspectBonus    = 0.2
	aspectRatioMin = 0.5
	aspectRatioMax = 2.0
)

// scoreImages returns a copy of images with QualityScore populated for every
// entry that did not already carry one.
func scoreImages(images []slotcfg.ImageMetadata) []slotcfg.ImageMetadata {
	scored := make([]slotcfg.ImageMetadata, len(images))
	for i, img := range images {
		if img.QualityScore == nil {
			score := qualityScore(img)
			img.QualityScore = &score
		}
		scored[i] = img
	}
	return scored
}

func qualityScore(img slotcfg.ImageMetadata) float64 {
	score := scoreBase

	pixels := float64(img.Width) * float64(img.Height)
	resolution := pixels / referencePixelCount
	if resolution > 1 {
		resolution = 1
	}
	score += resolution * resolutionWeight

	sizeMB := float64(img.FileSizeBytes) / (1024 * 1024)
	ramp := (sizeMB - sizeRampLow) / sizeRampLen
	if ramp < 0 {
		ramp = 0
	}
	if ramp > 1 {
		ramp = 1
	}
	score += ramp * sizeWeight

	if img.Height > 0 {
		ratio := float64(img.Width) / float64(img.Height)
		if ratio >= aspectRatioMin && ratio <= aspectRatioMax {
			score += aspectBonus
		}
	}

	if score > 1 {
		score = 1
	}
	return score
}
