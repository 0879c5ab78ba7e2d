package handlers

import "net/http"

// Health reports liveness. Pack resolution degrades to built-in specs, so
// there is no dependency to probe here.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
