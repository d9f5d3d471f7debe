package response

import (
	"encoding/json"
	"net/http"

	"arthive/shared/constant"
	"arthive/shared/failure"
	"arthive/shared/logger"
)

// Point is a lat/lng pair echoed back on geo queries.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Meta carries pagination info alongside list payloads, plus query echoes
// for the date and geo endpoints.
type Meta struct {
	Total        int     `json:"total"`
	Limit        int     `json:"limit"`
	Skip         int     `json:"skip"`
	TotalPage    int     `json:"totalPage,omitempty"`
	Date         string  `json:"date,omitempty"`
	UserLocation *Point  `json:"userLocation,omitempty"`
	Radius       float64 `json:"radius,omitempty"`
}

// Envelope is the uniform response body: success flag, payload, and
// optional pagination metadata.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data,omitempty"`
	Meta    *Meta   `json:"meta,omitempty"`
	Message *string `json:"message,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// WithMessage sends a successful response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: true, Message: &message})
}

// WithJSON sends a successful response containing a JSON payload
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Envelope{Success: true, Data: jsonPayload})
}

// WithPagination sends a successful list response with pagination metadata
func WithPagination(writer http.ResponseWriter, code int, jsonPayload any, meta Meta) {
	response(writer, code, Envelope{Success: true, Data: jsonPayload, Meta: &meta})
}

// WithError sends a failed response; internal errors are masked with a
// generic message so storage details never reach the client
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code == http.StatusInternalServerError {
		errMsg = constant.ResponseErrorInternal
	}

	response(writer, code, Envelope{Success: false, Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	msg := constant.ResponseErrorRequestLimitExceeded
	response(writer, http.StatusTooManyRequests, Envelope{Success: false, Error: &msg})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	msg := constant.ResponseErrorPrepareShutdown
	response(writer, http.StatusServiceUnavailable, Envelope{Success: false, Error: &msg})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	msg := constant.ResponseErrorUnhealthy
	response(writer, http.StatusServiceUnavailable, Envelope{Success: false, Error: &msg})
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
