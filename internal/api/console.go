package api

import (
	"net/http"
	"strings"

	"github.com/banshee-data/sceneview/internal/httputil"
)

type appendRequest struct {
	Text string `json:"text"`
}

// handleConsole returns the console view on GET and appends a line on POST.
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		httputil.WriteJSONOK(w, s.console.View())
	case http.MethodPost:
		var req appendRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.BadRequest(w, err.Error())
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			httputil.BadRequest(w, "text is required")
			return
		}
		entry := s.console.Append(req.Text)
		httputil.WriteJSON(w, http.StatusCreated, entry)
	default:
		httputil.MethodNotAllowed(w)
	}
}
