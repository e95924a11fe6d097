package flow

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// No settings row provisioned yet; the flow must not start with
	// undefined amounts.
	ErrNotReady = errors.New("loan offer is not configured")
	// Operation does not match the session's current step
	ErrInvalidStep = errors.New("operation not allowed at current step")
	// No session for this user (never started, or expired)
	ErrSessionNotFound = errors.New("flow session not found")
)

// ValidationError carries the first failing field of a step submission.
// Recoverable in place; nothing is persisted when one is returned.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

type Step string

const (
	StepPersonalData Step = "personal_data"
	StepBankData     Step = "bank_data"
	StepPayment      Step = "payment"
)

// SettingsSnapshot is the settings row as seen at session start. Amounts
// are copied into the application at creation; admin edits mid-session do
// not reach an in-progress applicant.
type SettingsSnapshot struct {
	SettingsID     string          `json:"settings_id"`
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
	AdhesionFee    decimal.Decimal `json:"adhesion_fee"`
	PixKey         string          `json:"pix_key"`
	PixQrCodeURL   string          `json:"pix_qr_code_url"`
	PixCopyPaste   string          `json:"pix_copy_paste"`
}

// Session is one applicant's position in the three-step flow. Keyed by
// user id; at most one session per user.
type Session struct {
	UserID        string `json:"user_id"`
	Step          Step   `json:"step"`
	ApplicationID string `json:"application_id"`

	// CPF captured at step 1, checked against the bank holder CPF at step 2
	CPF       string           `json:"cpf"`
	Settings  SettingsSnapshot `json:"settings"`
	StartedAt time.Time        `json:"started_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
