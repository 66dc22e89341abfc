// Package quoteapi posts quote requests to the backend that renders the
// commercial-offer PDF and registers the lead.
package quoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cpq_quote/internal/domain/entities"
	"cpq_quote/internal/usecase/interfaces"
	"cpq_quote/pkg/config"
	"cpq_quote/pkg/logger"
	"cpq_quote/pkg/metrics"

	"github.com/google/uuid"
)

const (
	quotePath       = "/api/quote"
	csrfHeader      = "X-CSRF-Token"
	maxResponseSize = 1 << 20

	msgTimeout      = "Request timeout - сервер не отвечает"
	msgNetwork      = "Network error - проверьте подключение к интернету"
	msgValidation   = "Ошибка валидации: "
	msgUnexpected   = "Unexpected response: "
	msgRequestError = "Request failed: "
)

type Client struct {
	baseURL    string
	csrfToken  string
	httpClient *http.Client
	mockMode   bool
	metrics    *metrics.QuoteMetrics
	log        *logger.Logger
}

var _ interfaces.ISubmissionClient = (*Client)(nil)

func NewClient(cfg config.QuoteAPIConfig, m *metrics.QuoteMetrics, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		csrfToken:  cfg.CSRFToken,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		mockMode:   cfg.Mock,
		metrics:    m,
		log:        log,
	}
	if c.mockMode {
		log.Info(context.Background(), "[quote][api] mock mode enabled")
	}
	return c
}

type quoteResponse struct {
	OK      *bool           `json:"ok"`
	PDFURL  string          `json:"pdf_url"`
	LeadID  string          `json:"lead_id"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

type validationDetail struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// Submit posts the payload and folds every outcome into a SubmissionResult.
func (c *Client) Submit(ctx context.Context, payload entities.SubmissionPayload) entities.SubmissionResult {
	start := time.Now()
	res := c.submit(ctx, payload)

	outcome := "ok"
	if !res.OK {
		outcome = string(res.ErrorKind)
	}
	c.metrics.ObserveSubmission(outcome, time.Since(start))

	lctx := c.log.WithFields(ctx, map[string]any{"outcome": outcome, "duration_ms": time.Since(start).Milliseconds()})
	if res.OK {
		c.log.Info(c.log.WithField(lctx, "lead_id", res.LeadID), "[quote][api] quote accepted")
	} else {
		c.log.Warn(lctx, "[quote][api] quote rejected", errors.New(res.Error))
	}
	return res
}

func (c *Client) submit(ctx context.Context, payload entities.SubmissionPayload) entities.SubmissionResult {
	if c.mockMode {
		return c.mockSubmit(ctx)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.SubmissionFailure(entities.SubmissionErrorUnknown, msgRequestError+err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+quotePath, bytes.NewReader(body))
	if err != nil {
		return entities.SubmissionFailure(entities.SubmissionErrorUnknown, msgRequestError+err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(csrfHeader, c.csrfToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return transportFailure(ctx, err)
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		text := strings.TrimSpace(string(raw))
		if text == "" {
			text = http.StatusText(resp.StatusCode)
		}
		return entities.SubmissionFailure(entities.SubmissionErrorUnknown, msgUnexpected+text)
	}

	var decoded quoteResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return entities.SubmissionFailure(entities.SubmissionErrorUnknown, msgRequestError+err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.SubmissionFailure(entities.SubmissionErrorServerRejection, rejectionMessage(resp.StatusCode, decoded))
	}

	switch {
	case decoded.OK != nil && *decoded.OK && decoded.PDFURL != "" && decoded.LeadID != "":
		return entities.SubmissionSuccess(decoded.PDFURL, decoded.LeadID)
	case decoded.OK != nil && !*decoded.OK:
		return entities.SubmissionFailure(entities.SubmissionErrorServerRejection, firstNonEmpty(decoded.Error, decoded.Message))
	}
	return entities.SubmissionFailure(entities.SubmissionErrorUnknown, msgRequestError+"malformed response body")
}

func (c *Client) mockSubmit(ctx context.Context) entities.SubmissionResult {
	if err := ctx.Err(); err != nil {
		return entities.SubmissionFailure(entities.SubmissionErrorTransientNetwork, msgTimeout)
	}
	leadID := uuid.NewString()
	return entities.SubmissionSuccess(fmt.Sprintf("%s/media/quotes/%s.pdf", c.baseURL, leadID), leadID)
}

func rejectionMessage(status int, r quoteResponse) string {
	if status == http.StatusUnprocessableEntity {
		if detail := formatDetail(r.Detail); detail != "" {
			return msgValidation + detail
		}
	}
	if msg := firstNonEmpty(r.Error, r.Message); msg != "" {
		return msg
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}

// formatDetail renders a validation detail list as "loc.a: msg; loc.b: msg".
// A plain string detail is returned as is.
func formatDetail(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var items []validationDetail
	if err := json.Unmarshal(raw, &items); err == nil {
		parts := make([]string, 0, len(items))
		for _, it := range items {
			loc := make([]string, 0, len(it.Loc))
			for _, l := range it.Loc {
				loc = append(loc, fmt.Sprint(l))
			}
			parts = append(parts, strings.Join(loc, ".")+": "+it.Msg)
		}
		return strings.Join(parts, "; ")
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(raw)
}

func transportFailure(ctx context.Context, err error) entities.SubmissionResult {
	var urlErr *url.Error
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		(errors.As(err, &urlErr) && urlErr.Timeout()) {
		return entities.SubmissionFailure(entities.SubmissionErrorTransientNetwork, msgTimeout)
	}
	if errors.As(err, &urlErr) {
		return entities.SubmissionFailure(entities.SubmissionErrorTransientNetwork, msgNetwork)
	}
	return entities.SubmissionFailure(entities.SubmissionErrorUnknown, msgRequestError+err.Error())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
