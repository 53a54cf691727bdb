package api

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/19h/isa-classifier-sub000/isa"
)

const maxUploadBytes = 128 * 1024 * 1024

// readPayload extracts the bytes to classify from a request: a JSON body
// naming a local path, or a raw octet-stream body.
func readPayload(r *http.Request) ([]byte, ClassifyRequest, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "application/octet-stream" {
		data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
		return data, ClassifyRequest{}, err
	}

	var req ClassifyRequest
	if err := readJSON(r, &req); err != nil {
		return nil, req, err
	}
	if req.Path == "" {
		return nil, req, errors.New("request body must set \"path\" or use Content-Type: application/octet-stream")
	}
	data, err := os.ReadFile(req.Path) // #nosec G304 -- operator-supplied local path
	return data, req, err
}

// handleClassify serves POST /api/v1/classify.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, req, err := readPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := req.applyTo(s.currentOptions())
	result, err := isa.Analyze(data, opts)
	if err != nil {
		var classifierErr isa.ClassifierError
		if errors.As(err, &classifierErr) {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Error:   classifierErr.Code(),
				Message: classifierErr.Error(),
				Code:    http.StatusUnprocessableEntity,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, classificationToResponse(result))
}

// handleClassifyMulti serves POST /api/v1/classify/multi. When the scanId
// query parameter is set, it broadcasts one window_result event per
// detected ISA (numbered by its position in the result list) and then a
// scan_complete event, all after DetectMultiISA has returned; no
// window_progress events are sent while the scan runs.
func (s *Server) handleClassifyMulti(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	windowSize := 4096
	if v := r.URL.Query().Get("window"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			windowSize = n
		}
	}
	scanID := r.URL.Query().Get("scanId")

	data, req, err := readPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := req.applyTo(s.currentOptions())
	detected := isa.DetectMultiISA(data, opts, windowSize)

	if scanID != "" {
		for i, d := range detected {
			s.broadcaster.BroadcastWindowResult(scanID, i, d.Isa.String(), d.AvgScore)
		}
		s.broadcaster.BroadcastScanComplete(scanID, len(detected))
	}

	resp := make([]DetectedIsaResponse, 0, len(detected))
	for _, d := range detected {
		resp = append(resp, detectedToResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleScore serves POST /api/v1/score?top=N, a debug/tuning endpoint
// exposing the full rank-off.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, req, err := readPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := req.applyTo(s.currentOptions())

	top := 0
	if v := r.URL.Query().Get("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			top = n
		}
	}

	var scores []isa.ArchitectureScore
	if top > 0 {
		scores = isa.TopCandidates(data, top, opts)
	} else {
		scores = isa.ScoreAll(data, opts)
	}

	resp := make([]ArchitectureScoreResponse, 0, len(scores))
	for _, sc := range scores {
		resp = append(resp, scoreToResponse(sc))
	}
	writeJSON(w, http.StatusOK, resp)
}
