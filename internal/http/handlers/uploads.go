package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"server/internal/domain"
	"server/internal/domain/slotcfg"
)

// ValidateUploads is the file path: the manifest arrives as a JSON form
// field and the images as multipart files, which are probed for type, size
// and dimensions before the validator runs.
func (a *App) ValidateUploads(w http.ResponseWriter, r *http.Request) {
	maxBytes := a.Config.MaxUploadMB << 20
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart payload")
		return
	}

	archetype := r.FormValue("archetype")
	var manifest []slotcfg.ManifestEntry
	if raw := r.FormValue("manifest"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &manifest); err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "manifest field is not valid JSON")
			return
		}
	}
	if msg := a.checkSubmissionShape(archetype, manifest, nil); msg != "" {
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "no files uploaded")
		return
	}
	slotByFile := make(map[string]string, len(manifest))
	for _, entry := range manifest {
		slotByFile[entry.File] = entry.Slot
	}

	images := make([]slotcfg.ImageMetadata, 0, len(manifest))
	for _, header := range r.MultipartForm.File["files"] {
		name := strings.TrimSpace(header.Filename)
		slot, ok := slotByFile[name]
		if !ok {
			a.error(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("uploaded file %q has no manifest entry", name))
			return
		}
		file, err := header.Open()
		if err != nil {
			a.error(w, http.StatusInternalServerError, "internal", fmt.Sprintf("open %s", name))
			return
		}
		meta, err := a.Prober.Probe(name, slot, file)
		_ = file.Close()
		if err != nil {
			if errors.Is(err, domain.ErrUnsupportedFile) {
				a.error(w, http.StatusBadRequest, "unsupported_file", err.Error())
				return
			}
			a.error(w, http.StatusInternalServerError, "internal", fmt.Sprintf("probe %s", name))
			return
		}
		images = append(images, meta)
	}

	result := a.Engine.ValidateAndSelect(r.Context(), archetype, manifest, images)
	a.Metrics.Observe(archetype, result)
	a.json(w, http.StatusOK, validationResponse{Success: true, Validation: result})
}
