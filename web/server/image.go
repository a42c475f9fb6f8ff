package server

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/df07/go-fragment-raytracer/pkg/output"
	"github.com/df07/go-fragment-raytracer/pkg/renderer"
)

// handleImage renders the whole image and returns it encoded in the requested format
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}

	raytracer, err := s.newRaytracer(req, renderer.NewStdLogger())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	img, stats, err := raytracer.Render(r.Context(), nil)
	if err != nil {
		// Client went away; nothing useful to send
		log.Printf("Image render aborted: %v", err)
		return
	}

	scaled, err := output.Scale(img, req.Scale)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, scaled, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Coverage", strconv.FormatFloat(stats.Coverage(), 'f', 4, 64))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing image response: %v", err)
	}
}
