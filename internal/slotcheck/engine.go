package slotcheck

import (
	"context"
	"fmt"

	"server/internal/domain/slotcfg"

	"github.com/rs/zerolog"
)

// SpecResolver supplies the archetype spec a submission is judged against.
// Implementations are expected to degrade to built-in defaults rather than
// fail on missing configuration.
type SpecResolver interface {
	Resolve(ctx context.Context, archetype string) (*slotcfg.ArchetypeSpec, error)
}

// Engine runs the full validation pipeline for one submission: resolve the
// spec, check requirements, score the images, and pick the generation set
// under the cost ceiling.
type Engine struct {
	resolver SpecResolver
	logger   zerolog.Logger
}

func NewEngine(resolver SpecResolver, logger zerolog.Logger) *Engine {
	return &Engine{resolver: resolver, logger: logger}
}

// ValidateAndSelect judges one submission. It never panics past this
// boundary: unexpected faults are converted into a failed result so the HTTP
// layer can always serialize an answer.
func (e *Engine) ValidateAndSelect(ctx context.Context, archetype string, manifest []slotcfg.ManifestEntry, images []slotcfg.ImageMetadata) (result *slotcfg.ValidationResult) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error().Str("archetype", archetype).Msgf("slot validation panic: %v", rec)
			result = failedResult(fmt.Sprintf("internal error: %v", rec))
		}
	}()

	spec, err := e.resolver.Resolve(ctx, archetype)
	if err != nil || spec == nil {
		msg := "no archetype spec could be resolved"
		if err != nil {
			msg = fmt.Sprintf("resolve archetype spec: %v", err)
		}
		e.logger.Error().Str("archetype", archetype).Msg(msg)
		return failedResult(msg)
	}

	errs, warns := validateBasics(spec, manifest, images)
	if len(errs) > 0 {
		return &slotcfg.ValidationResult{
			IsValid:  false,
			Errors:   errs,
			Warnings: warns,
			Summary:  emptySummary(),
		}
	}

	scored := scoreImages(images)
	selected := selectForGeneration(spec, manifest, scored)
	warns = append(warns, advisoryWarnings(spec, manifest)...)

	requiredTotal := 0
	requiredFulfilled := 0
	perSlot := countPerSlot(manifest)
	for _, slot := range spec.Slots {
		if !slot.Required {
			continue
		}
		requiredTotal++
		if perSlot[slot.Key] > 0 {
			requiredFulfilled++
		}
	}

	return &slotcfg.ValidationResult{
		IsValid:  true,
		Errors:   make([]string, 0),
		Warnings: warns,
		Summary: slotcfg.ValidationSummary{
			TotalUploaded:         len(manifest),
			RequiredFulfilled:     requiredFulfilled,
			RequiredTotal:         requiredTotal,
			SelectedForGeneration: selected,
			CostEstimate:          estimateCost(len(selected)),
		},
	}
}

func failedResult(msg string) *slotcfg.ValidationResult {
	return &slotcfg.ValidationResult{
		IsValid:  false,
		Errors:   []string{msg},
		Warnings: make([]string, 0),
		Summary:  emptySummary(),
	}
}

func emptySummary() slotcfg.ValidationSummary {
	return slotcfg.ValidationSummary{SelectedForGeneration: make([]string, 0)}
}
