package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"cpq_quote/internal/adapter/http/dto/request"
	"cpq_quote/internal/adapter/http/dto/response"
	"cpq_quote/internal/domain/entities"
	"cpq_quote/internal/usecase"
	"cpq_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload   = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
	errInvalidFormPayload      = pkg.NewDomainErrorSimple("INVALID_FORM_INPUT", "Invalid form payload", http.StatusBadRequest)
	errInvalidOverridesPayload = pkg.NewDomainErrorSimple("INVALID_OVERRIDES_INPUT", "Invalid overrides payload", http.StatusBadRequest)
)

// SessionHandler exposes quote sessions: form editing, tariff overrides and
// the submission lifecycle.
type SessionHandler struct {
	usecase usecase.IQuoteSessionUseCase
}

func NewSessionHandler(uc usecase.IQuoteSessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// StartSession godoc
// @Summary      Start or resume a quote session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      request.StartSessionRequest  false  "Existing session id"
// @Success      200   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
			return
		}
	}

	view, err := h.usecase.Start(c.Request.Context(), payload.SessionID)
	h.render(c, view, err)
}

// GetSession godoc
// @Summary      Get a quote session
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	h.render(c, view, err)
}

// UpdateForm godoc
// @Summary      Update form fields
// @Description  Sets the given fields; null or "" resets a field. Unknown fields are rejected.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Session id"
// @Param        body  body      request.UpdateFormRequest  true  "Fields"
// @Success      200   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /sessions/{id}/form [patch]
func (h *SessionHandler) UpdateForm(c *gin.Context) {
	var payload request.UpdateFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormPayload.HTTPStatus, errInvalidFormPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.UpdateForm(c.Request.Context(), c.Param("id"), map[string]json.RawMessage(payload))
	h.render(c, view, err)
}

// ClearForm godoc
// @Summary      Clear the form and overrides
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{id}/form [delete]
func (h *SessionHandler) ClearForm(c *gin.Context) {
	h.sessionAction(c, h.usecase.ClearForm)
}

// UpdateOverrides godoc
// @Summary      Replace tariff overrides
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Session id"
// @Param        body  body      request.OverridesRequest  true  "Overrides"
// @Success      200   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /sessions/{id}/overrides [put]
func (h *SessionHandler) UpdateOverrides(c *gin.Context) {
	var payload request.OverridesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOverridesPayload.HTTPStatus, errInvalidOverridesPayload.ToHTTPError())
		return
	}
	overrides, err := payload.ToOverrideSet()
	if err != nil {
		c.JSON(errInvalidOverridesPayload.HTTPStatus, errInvalidOverridesPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.UpdateOverrides(c.Request.Context(), c.Param("id"), overrides)
	h.render(c, view, err)
}

// Submit godoc
// @Summary      Submit the quote
// @Description  Blocks until the quote backend answers. A failed submission is reported in result with status "error".
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{id}/submit [post]
func (h *SessionHandler) Submit(c *gin.Context) {
	h.sessionAction(c, h.usecase.Submit)
}

// Cancel godoc
// @Summary      Cancel the in-flight submission
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{id}/cancel [post]
func (h *SessionHandler) Cancel(c *gin.Context) {
	h.sessionAction(c, h.usecase.Cancel)
}

// Retry godoc
// @Summary      Return a failed session to idle
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{id}/retry [post]
func (h *SessionHandler) Retry(c *gin.Context) {
	h.sessionAction(c, h.usecase.Retry)
}

// TrackPDFClick godoc
// @Summary      Record a click on the generated PDF link
// @Tags         sessions
// @Param        id   path  string  true  "Session id"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{id}/events/pdf-click [post]
func (h *SessionHandler) TrackPDFClick(c *gin.Context) {
	if err := h.usecase.TrackPDFClick(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) sessionAction(c *gin.Context, action func(ctx context.Context, sessionID string) (usecase.SessionView, error)) {
	view, err := action(c.Request.Context(), c.Param("id"))
	h.render(c, view, err)
}

func (h *SessionHandler) render(c *gin.Context, view usecase.SessionView, err error) {
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(view))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Invalid session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrUnknownFormField), errors.Is(err, entities.ErrInvalidFormValue):
		return pkg.NewDomainError("INVALID_FORM_FIELD", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTariffVariant), errors.Is(err, usecase.ErrInvalidOverride):
		return pkg.NewDomainError("INVALID_OVERRIDE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Action not allowed in the current session status", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionSuperseded):
		return pkg.NewDomainErrorSimple("SUBMISSION_SUPERSEDED", "Submission was superseded by a newer one", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionCancelled):
		return pkg.NewDomainErrorSimple("SUBMISSION_CANCELLED", "Submission was cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoSubmittedQuote):
		return pkg.NewDomainErrorSimple("NO_SUBMITTED_QUOTE", "No quote has been submitted yet", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
