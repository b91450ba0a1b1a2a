package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/errors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
	"github.com/matzehuels/gradientlab/pkg/input"
	pkgio "github.com/matzehuels/gradientlab/pkg/io"
	"github.com/matzehuels/gradientlab/pkg/pipeline"
)

type cssResponse struct {
	CSS string `json:"css"`
}

type convertResponse struct {
	Hex string `json:"hex"`
	RGB string `json:"rgb"`
	HSL string `json:"hsl"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleDesign(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := pkgio.WriteJSON(w, s.design); err != nil {
		s.logger.Warn("write design", "err", err)
	}
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	spec, err := s.readDesign(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	css, err := s.runner.Compose(spec)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, cssResponse{CSS: css})
}

func (s *Server) handlePreviewConfigured(w http.ResponseWriter, r *http.Request) {
	s.servePreview(w, r, s.design)
}

func (s *Server) handlePreviewPosted(w http.ResponseWriter, r *http.Request) {
	spec, err := s.readDesign(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.servePreview(w, r, spec)
}

func (s *Server) servePreview(w http.ResponseWriter, r *http.Request, spec gradient.Spec) {
	opts := s.previewOptions(r)
	data, hit, err := s.runner.PNG(r.Context(), spec, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	cacheStatus := "miss"
	if hit {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Cache", cacheStatus)
	_, _ = w.Write(data)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	c, err := colors.HexToRGB(r.URL.Query().Get("color"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, convertResponse{
		Hex: c.Format(colors.FormatHex),
		RGB: c.Format(colors.FormatRGB),
		HSL: c.Format(colors.FormatHSL),
	})
}

// previewOptions overlays query parameters on the server defaults.
// Non-numeric values read as 0, which keeps the default.
func (s *Server) previewOptions(r *http.Request) pipeline.Options {
	opts := s.preview
	q := r.URL.Query()
	if v := input.Int(q.Get("width")); v != 0 {
		opts.Width = v
	}
	if v := input.Int(q.Get("height")); v != 0 {
		opts.Height = v
	}
	if v := input.Int(q.Get("draft")); v != 0 {
		opts.Draft = v
	}
	switch q.Get("handles") {
	case "1", "true":
		opts.Handles = true
	case "0", "false":
		opts.Handles = false
	}
	opts.Refresh = q.Get("refresh") == "1"
	return opts
}

func (s *Server) readDesign(w http.ResponseWriter, r *http.Request) (gradient.Spec, error) {
	return pkgio.ReadJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
		msg = "internal error"
	}
	s.writeJSON(w, status, errorBody{Error: errorDetail{Code: string(code), Message: msg}})
}

// statusFor maps error codes to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
