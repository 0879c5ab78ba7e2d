package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"server/internal/domain/slotcfg"
)

type validateSlotsRequest struct {
	Archetype string                  `json:"archetype"`
	Manifest  []slotcfg.ManifestEntry `json:"manifest"`
	Images    []slotcfg.ImageMetadata `json:"images"`
}

type validationResponse struct {
	Success    bool                      `json:"success"`
	Validation *slotcfg.ValidationResult `json:"validation"`
}

// ValidateSlots is the metadata-only path: the caller supplies per-file
// dimensions and sizes alongside the manifest, typically after a prior
// upload stage already checked the raw files.
func (a *App) ValidateSlots(w http.ResponseWriter, r *http.Request) {
	var req validateSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if msg := a.checkSubmissionShape(req.Archetype, req.Manifest, req.Images); msg != "" {
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}

	result := a.Engine.ValidateAndSelect(r.Context(), req.Archetype, req.Manifest, req.Images)
	a.Metrics.Observe(req.Archetype, result)
	a.json(w, http.StatusOK, validationResponse{Success: true, Validation: result})
}

// Archetypes lists every resolvable archetype with its slot template, for
// upload UIs to render the shot list.
func (a *App) Archetypes(w http.ResponseWriter, r *http.Request) {
	specs := a.Packs.Archetypes(r.Context())
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	items := make([]map[string]any, 0, len(specs))
	for _, name := range names {
		items = append(items, map[string]any{
			"archetype": name,
			"spec":      specs[name],
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// checkSubmissionShape rejects structurally broken requests before the
// validator runs. The manifest cap bounds work on adversarial input; it is a
// hard limit, unlike the per-archetype max_total warning.
func (a *App) checkSubmissionShape(archetype string, manifest []slotcfg.ManifestEntry, images []slotcfg.ImageMetadata) string {
	if strings.TrimSpace(archetype) == "" {
		return "archetype is required"
	}
	if len(manifest) == 0 {
		return "manifest is required"
	}
	if len(manifest) > a.Config.MaxManifestEntries {
		return fmt.Sprintf("manifest exceeds %d entries", a.Config.MaxManifestEntries)
	}
	seen := make(map[string]struct{}, len(manifest))
	for _, entry := range manifest {
		if strings.TrimSpace(entry.File) == "" || strings.TrimSpace(entry.Slot) == "" {
			return "every manifest entry needs a file and a slot"
		}
		if _, dup := seen[entry.File]; dup {
			return fmt.Sprintf("duplicate file %q in manifest", entry.File)
		}
		seen[entry.File] = struct{}{}
	}
	for _, img := range images {
		if _, ok := seen[img.Filename]; !ok {
			return fmt.Sprintf("image metadata for %q has no manifest entry", img.Filename)
		}
		if img.QualityScore != nil && (*img.QualityScore < 0 || *img.QualityScore > 1) {
			return fmt.Sprintf("quality score for %q must be between 0 and 1", img.Filename)
		}
	}
	return ""
}
