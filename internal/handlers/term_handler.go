package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cloud-dictionary-api/internal/middleware"
	"cloud-dictionary-api/internal/models"
	"cloud-dictionary-api/internal/repositories"
	"cloud-dictionary-api/internal/services"
	"cloud-dictionary-api/pkg/lambda"
)

// TermHandler serves TermLookup and TermSearch over gin and over API Gateway
type TermHandler struct {
	termService services.TermService
	logger      logrus.FieldLogger
}

// NewTermHandler creates a new term handler
func NewTermHandler(termService services.TermService, logger logrus.FieldLogger) *TermHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TermHandler{
		termService: termService,
		logger:      logger,
	}
}

// @Summary Look up a term
// @Description Get the record stored under an exact term key
// @Tags terms
// @Produce json
// @Param term path string true "Term key"
// @Success 200 {object} models.Term
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /terms/{term} [get]
func (h *TermHandler) GetTerm(c *gin.Context) {
	status, body := h.lookup(c.Request.Context(), lookupRequestFromGin(c), c.GetString(middleware.RequestIDKey))
	c.Header("Access-Control-Allow-Origin", middleware.AllowOrigin)
	c.JSON(status, body)
}

// @Summary Search terms
// @Description Get every term whose key or definition contains the query, ignoring case
// @Tags terms
// @Produce json
// @Param query query string false "Search text"
// @Success 200 {array} models.Term
// @Failure 500 {object} ErrorResponse
// @Router /terms [get]
func (h *TermHandler) SearchTerms(c *gin.Context) {
	status, body := h.search(c.Request.Context(), searchRequestFromGin(c), c.GetString(middleware.RequestIDKey))
	c.Header("Access-Control-Allow-Origin", middleware.AllowOrigin)
	c.JSON(status, body)
}

// HandleLookup is the API Gateway entry point for TermLookup
func (h *TermHandler) HandleLookup(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	status, body := h.lookup(ctx, lookupRequestFromLambda(req), req.RequestID)
	return lambda.JSON(status, body)
}

// HandleSearch is the API Gateway entry point for TermSearch
func (h *TermHandler) HandleSearch(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	status, body := h.search(ctx, searchRequestFromLambda(req), req.RequestID)
	return lambda.JSON(status, body)
}

func (h *TermHandler) lookup(ctx context.Context, req LookupRequest, requestID string) (int, any) {
	term, err := h.termService.LookupTerm(ctx, req.TermValue())
	switch {
	case err == nil:
		return http.StatusOK, term
	case repositories.IsNotFound(err):
		return http.StatusNotFound, ErrorResponse{Error: MsgTermNotFound}
	default:
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  "lookup",
			"term":       req.TermValue(),
		}).WithError(err).Error("Term lookup failed")
		return http.StatusInternalServerError, ErrorResponse{Error: MsgCouldNotRetrieveTerm}
	}
}

func (h *TermHandler) search(ctx context.Context, req SearchRequest, requestID string) (int, any) {
	terms, err := h.termService.SearchTerms(ctx, req.QueryValue())
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  "search",
			"query":      req.QueryValue(),
		}).WithError(err).Error("Term search failed")
		return http.StatusInternalServerError, ErrorResponse{Error: MsgCouldNotRetrieveList}
	}
	if terms == nil {
		terms = []models.Term{}
	}
	return http.StatusOK, terms
}
