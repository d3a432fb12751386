// Package lambda exposes counter operations as an AWS Lambda handler
// behind API Gateway proxy integration.
package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/sergio/dynamodb-atomic-counter/counter"
)

// Counters is the slice of the counter client the handler uses.
type Counters interface {
	Increment(ctx context.Context, counterID string, opts ...counter.Option) (int64, error)
	GetLastValue(ctx context.Context, counterID string, opts ...counter.Option) (int64, error)
}

// Handler serves counter requests from API Gateway proxy events.
//
// Routes:
//
//	POST /counters/{id}/increment   body: {"increment": N} (optional, default 1)
//	GET  /counters/{id}
type Handler struct {
	counters Counters
	logger   *slog.Logger
}

// NewHandler creates a new request handler.
func NewHandler(c Counters, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		counters: c,
		logger:   logger,
	}
}

type incrementRequest struct {
	Increment *int64 `json:"increment"`
}

type counterResponse struct {
	ID        string `json:"id"`
	LastValue int64  `json:"lastValue"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handle processes a single API Gateway proxy request. Pass it to the
// aws-lambda-go runtime's Start to serve a function.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := uuid.NewString()
	logger := h.logger.With("requestId", requestID)

	counterID := req.PathParameters["id"]
	if counterID == "" {
		return respondError(http.StatusBadRequest, "missing counter id"), nil
	}

	switch {
	case req.HTTPMethod == http.MethodPost && strings.HasSuffix(req.Path, "/increment"):
		return h.handleIncrement(ctx, logger, counterID, req.Body)
	case req.HTTPMethod == http.MethodGet:
		return h.handleGetLastValue(ctx, logger, counterID)
	default:
		return respondError(http.StatusMethodNotAllowed, "unsupported route"), nil
	}
}

func (h *Handler) handleIncrement(ctx context.Context, logger *slog.Logger, counterID, body string) (events.APIGatewayProxyResponse, error) {
	var opts []counter.Option
	if strings.TrimSpace(body) != "" {
		var incReq incrementRequest
		if err := json.Unmarshal([]byte(body), &incReq); err != nil {
			return respondError(http.StatusBadRequest, "invalid request body"), nil
		}
		if incReq.Increment != nil {
			opts = append(opts, counter.WithDelta(*incReq.Increment))
		}
	}

	value, err := h.counters.Increment(ctx, counterID, opts...)
	if err != nil {
		return h.respondOperationError(logger, "increment", counterID, err), nil
	}

	logger.Info("incremented counter",
		"counterId", counterID,
		"lastValue", value,
	)
	return respondJSON(http.StatusOK, counterResponse{ID: counterID, LastValue: value}), nil
}

func (h *Handler) handleGetLastValue(ctx context.Context, logger *slog.Logger, counterID string) (events.APIGatewayProxyResponse, error) {
	value, err := h.counters.GetLastValue(ctx, counterID)
	if err != nil {
		return h.respondOperationError(logger, "getLastValue", counterID, err), nil
	}

	logger.Info("read counter",
		"counterId", counterID,
		"lastValue", value,
	)
	return respondJSON(http.StatusOK, counterResponse{ID: counterID, LastValue: value}), nil
}

func (h *Handler) respondOperationError(logger *slog.Logger, op, counterID string, err error) events.APIGatewayProxyResponse {
	logger.Error("counter operation failed",
		"op", op,
		"counterId", counterID,
		"error", err,
	)

	if errors.Is(err, counter.ErrEmptyCounterID) {
		return respondError(http.StatusBadRequest, err.Error())
	}
	return respondError(http.StatusBadGateway, "counter store unavailable")
}

func respondJSON(status int, body any) events.APIGatewayProxyResponse {
	payload, _ := json.Marshal(body)
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}
}

func respondError(status int, message string) events.APIGatewayProxyResponse {
	return respondJSON(status, errorResponse{Error: message})
}
