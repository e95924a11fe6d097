package admin

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveSettingsInput carries amounts as raw strings; they are parsed and
// gated here before any storage call.
type SaveSettingsInput struct {
	SettingsID     string `json:"settings_id"`
	ApprovedAmount string `json:"approved_amount"`
	AdhesionFee    string `json:"adhesion_fee"`
	PixKey         string `json:"pix_key"`
	PixQrCodeURL   string `json:"pix_qr_code_url"`
	PixCopyPaste   string `json:"pix_copy_paste"`
}

type SettingsDTO struct {
	SettingsID     string          `json:"settings_id"`
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
	AdhesionFee    decimal.Decimal `json:"adhesion_fee"`
	PixKey         string          `json:"pix_key"`
	PixQrCodeURL   string          `json:"pix_qr_code_url"`
	PixCopyPaste   string          `json:"pix_copy_paste"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type ApplicationDTO struct {
	ApplicationID  string          `json:"application_id"`
	UserID         string          `json:"user_id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	CPF            string          `json:"cpf"`
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
	AdhesionFee    decimal.Decimal `json:"adhesion_fee"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

type Stats struct {
	Total          int `json:"total"`
	Approved       int `json:"approved"`
	PaymentPending int `json:"payment_pending"`
}

type ApplicationsReport struct {
	Applications []ApplicationDTO `json:"applications"`
	Stats        Stats            `json:"stats"`
}
