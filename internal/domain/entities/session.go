package entities

// SessionStatus is the quote session lifecycle.
//
//	uninitialized -> idle -> loading -> success | error
//	error -> idle (retry); any -> idle (clear form)
type SessionStatus string

const (
	SessionStatusUninitialized SessionStatus = "uninitialized"
	SessionStatusIdle          SessionStatus = "idle"
	SessionStatusLoading       SessionStatus = "loading"
	SessionStatusSuccess       SessionStatus = "success"
	SessionStatusError         SessionStatus = "error"
)

const (
	EventFormSubmit   = "cpq_form_submit"
	EventAPIOK        = "cpq_api_ok"
	EventAPIError     = "cpq_api_error"
	EventPDFLinkClick = "cpq_pdf_link_click"
)

// QuoteEvent is an analytics event emitted by a quote session.
type QuoteEvent struct {
	Name      string `json:"event"`
	SessionID string `json:"session_id,omitempty"`
	LeadID    string `json:"lead_id,omitempty"`
	Message   string `json:"message,omitempty"`
}
