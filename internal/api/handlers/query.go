package handlers

import (
	"errors"
	"net/http"

	"github.com/Ayash-Bera/fortaleza/internal/middleware"
	"github.com/Ayash-Bera/fortaleza/internal/models"
	"github.com/Ayash-Bera/fortaleza/internal/relay"
	"github.com/Ayash-Bera/fortaleza/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BodyTooLargeMessage is the client error for a body over the size limit.
const BodyTooLargeMessage = "Corpo da requisição muito grande"

type QueryHandler struct {
	relay  *relay.Relay
	logger *logrus.Logger
}

func NewQueryHandler(r *relay.Relay, logger *logrus.Logger) *QueryHandler {
	return &QueryHandler{
		relay:  r,
		logger: logger,
	}
}

// HandleQuery answers POST /api/query. Apart from a missing query or an
// oversized body it always replies 200, with either the generated answer or
// a canned one.
func (h *QueryHandler) HandleQuery(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.WithField("limit_bytes", tooLarge.Limit).Warn("Query request body too large")
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, BodyTooLargeMessage)
			return
		}
		h.logger.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Warn("Invalid query request")
		utils.ErrorResponse(c, http.StatusBadRequest, relay.MissingQueryMessage)
		return
	}

	result, err := h.relay.Handle(c.Request.Context(), req.Query)
	if errors.Is(err, relay.ErrMissingQuery) {
		utils.ErrorResponse(c, http.StatusBadRequest, relay.MissingQueryMessage)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"outcome":    result.Outcome.String(),
	}).Info("Query answered")

	response := models.QueryResponse{Answer: result.Answer}
	switch result.Outcome {
	case relay.OutcomeSimulated:
		response.Note = result.Note
	case relay.OutcomeFailed:
		response.Error = result.Reason
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}
