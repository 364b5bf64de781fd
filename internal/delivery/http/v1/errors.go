package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-todo-catalog/internal/services"
)

var (
	errInvalidRequestBody = errors.New("invalid request body")
	errInvalidID          = errors.New("invalid id")
	errRouteNotFound      = errors.New("route not found")
)

const internalErrorMessage = "internal server error"

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

// abort writes err as the response body. Not found responses carry the
// text under "message", every other error under "error".
func abort(c *gin.Context, err apiError) {
	if err.Code == http.StatusNotFound {
		c.AbortWithStatusJSON(err.Code, gin.H{"message": err.Message})
		return
	}
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(r resource) apiError {
	return newAPIError(http.StatusNotFound, r.notFound())
}

func newInternalError() apiError {
	return newAPIError(http.StatusInternalServerError, internalErrorMessage)
}

// handleError is the single place where service errors become HTTP
// responses. Driver details never leave the server.
func (h *handlerImpl) handleError(c *gin.Context, r resource, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		abort(c, newNotFoundError(r))
	case errors.Is(err, services.ErrInvalidReference):
		abort(c, newBadRequestError(services.ErrInvalidReference.Error()))
	case errors.Is(err, services.ErrInvalidQuery),
		errors.Is(err, services.ErrNoFieldsToUpdate),
		errors.Is(err, services.ErrMissingField):
		abort(c, newBadRequestError(err.Error()))
	default:
		h.logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Str("request_id", requestID(c)).
			Msg("request failed")
		abort(c, newInternalError())
	}
}

// handleAffected turns the row count of an update or delete into a
// response.
func (h *handlerImpl) handleAffected(c *gin.Context, r resource, action string, affected int64, err error) {
	if err != nil {
		h.handleError(c, r, err)
		return
	}
	if affected == 0 {
		abort(c, newNotFoundError(r))
		return
	}
	c.JSON(http.StatusOK, newMessageResponse(r.done(action)))
}

func (h *handlerImpl) HandleNoRoute(c *gin.Context) {
	abort(c, newAPIError(http.StatusNotFound, errRouteNotFound.Error()))
}

// HandleRecovery answers a recovered panic with the generic 500 body.
func (h *handlerImpl) HandleRecovery(c *gin.Context, recovered any) {
	h.logger.Error().
		Interface("panic", recovered).
		Str("method", c.Request.Method).
		Str("route", c.FullPath()).
		Str("request_id", requestID(c)).
		Msg("recovered from panic")
	abort(c, newInternalError())
}
