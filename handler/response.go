package handler

import (
	"encoding/json"
	"net/http"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
	// Retryable is set when the failure came from lost connectivity or an
	// unavailable backend and the client may offer a manual re-attempt.
	Retryable bool `json:"retryable,omitempty"`
}

type jsonResponse struct {
	status int
	body   Envelope
	err    error
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON wraps v in the envelope with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: Envelope{Data: v}}
}

// Created wraps v in the envelope with status 201.
func Created(v any) Response {
	return jsonResponse{status: http.StatusCreated, body: Envelope{Data: v}}
}

// Error renders err with the status and code it maps to.
func Error(err error) Response {
	status, detail := errorToDetail(err)
	return jsonResponse{status: status, body: Envelope{Error: detail}, err: err}
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty responds 204 without a body.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}
