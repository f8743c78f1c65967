package server

import (
	"encoding/json"
	"fmt"
	"github.com/bokysan/vspace/internal/version"
	"github.com/bokysan/vspace/internal/vspace"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net/http"
)

// DefaultMaxBodySize limits the size of request bodies if no other limit is set
const DefaultMaxBodySize = 1 << 20

type EncodeRequest struct {
	Text  string `json:"text"`
	Cover string `json:"cover,omitempty"`
}

type EncodeResponse struct {
	Encoded string `json:"encoded"`
}

type DecodeRequest struct {
	Encoded string `json:"encoded"`
	Extract bool   `json:"extract,omitempty"`
}

type DecodeResponse struct {
	Text string `json:"text"`
}

type InfoResponse struct {
	Alphabet      []string `json:"alphabet"`
	Radix         int      `json:"radix"`
	PreEncoder    string   `json:"pre-encoder"`
	SymbolCount   int      `json:"symbol-count"`
	SymbolsNeeded int      `json:"symbols-needed"`
	Version       string   `json:"version"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Position  *int   `json:"position,omitempty"`
	RequestId string `json:"request-id,omitempty"`
}

type api struct {
	codec       *vspace.Codec
	maxBodySize int64
}

func (a *api) encode(w http.ResponseWriter, r *http.Request) {
	req := &EncodeRequest{}
	if !a.readRequest(w, r, req) {
		return
	}

	var res string
	var err error
	if req.Cover != "" {
		res, err = a.codec.Embed(req.Cover, req.Text)
	} else {
		res, err = a.codec.Encode(req.Text)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &EncodeResponse{Encoded: res})
}

func (a *api) decode(w http.ResponseWriter, r *http.Request) {
	req := &DecodeRequest{}
	if !a.readRequest(w, r, req) {
		return
	}

	var res string
	var err error
	if req.Extract {
		res, err = a.codec.Extract(req.Encoded)
	} else {
		res, err = a.codec.Decode(req.Encoded)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &DecodeResponse{Text: res})
}

func (a *api) info(w http.ResponseWriter, r *http.Request) {
	symbols := a.codec.Alphabet().Symbols()
	alphabet := make([]string, len(symbols))
	for i, s := range symbols {
		alphabet[i] = fmt.Sprintf("U+%04X", s)
	}
	writeJSON(w, http.StatusOK, &InfoResponse{
		Alphabet:      alphabet,
		Radix:         len(symbols),
		PreEncoder:    a.codec.PreEncoder().Name(),
		SymbolCount:   a.codec.PreEncoder().SymbolCount(),
		SymbolsNeeded: a.codec.SymbolsNeeded(),
		Version:       version.Summary(),
	})
}

func (a *api) readRequest(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	limit := a.maxBodySize
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		log.WithError(err).Debugf("Invalid request: %v", err)
		writeJSON(w, http.StatusBadRequest, &ErrorResponse{
			Error:     err.Error(),
			Kind:      "invalid-request",
			RequestId: middleware.GetReqID(r.Context()),
		})
		return false
	}
	return true
}

// errorKind maps codec errors to a short, stable name and an HTTP status
func errorKind(err error) (string, int) {
	switch {
	case errors.Is(err, vspace.ErrInvalidCharacter):
		return "invalid-character", http.StatusBadRequest
	case errors.Is(err, vspace.ErrInvalidFormat):
		return "invalid-format", http.StatusBadRequest
	case errors.Is(err, vspace.ErrInvalidSymbol):
		return "invalid-symbol", http.StatusBadRequest
	case errors.Is(err, vspace.ErrInvalidValue):
		return "invalid-value", http.StatusBadRequest
	case errors.Is(err, vspace.ErrInvalidAlphabet):
		return "invalid-alphabet", http.StatusBadRequest
	default:
		return "internal", http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind, status := errorKind(err)
	res := &ErrorResponse{
		Error:     err.Error(),
		Kind:      kind,
		RequestId: middleware.GetReqID(r.Context()),
	}
	var ce *vspace.CharacterError
	if errors.As(err, &ce) {
		pos := ce.Position
		res.Position = &pos
	}
	if status >= http.StatusInternalServerError {
		log.WithError(err).Errorf("Request %v failed: %+v", res.RequestId, err)
	} else {
		log.WithError(err).Debugf("Request %v rejected: %v", res.RequestId, err)
	}
	writeJSON(w, status, res)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warnf("Could not write response: %v", err)
	}
}
