package flow

import (
	"time"

	"github.com/shopspring/decimal"
)

type PersonalDataInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	CPF   string `json:"cpf"`
}

type BankDataInput struct {
	Agency     string `json:"agency"`
	Account    string `json:"account"`
	HolderName string `json:"holder_name"`
	HolderCPF  string `json:"holder_cpf"`
}

// SessionDTO is what the applicant sees of their own flow.
type SessionDTO struct {
	Step           string          `json:"step"`
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
	AdhesionFee    decimal.Decimal `json:"adhesion_fee"`
	ApplicationID  string          `json:"application_id,omitempty"`
	StartedAt      time.Time       `json:"started_at"`
}

// PaymentInstructionsDTO carries the fee and whichever PIX identifiers are
// configured; empty ones are omitted so the client renders only usable
// affordances.
type PaymentInstructionsDTO struct {
	AdhesionFee  decimal.Decimal `json:"adhesion_fee"`
	PixKey       string          `json:"pix_key,omitempty"`
	PixQrCodeURL string          `json:"pix_qr_code_url,omitempty"`
	PixCopyPaste string          `json:"pix_copy_paste,omitempty"`
}
