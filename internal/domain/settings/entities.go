package settings

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("settings not found")
)

// Table: admin_settings. Exactly one active row; provisioned operationally,
// never created or deleted through this service.
type Settings struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	SettingsID string `gorm:"column:settings_id;type:char(32);not null;uniqueIndex:ux_admin_settings_settings_id"`
	// Offer shown to every applicant
	ApprovedAmount decimal.Decimal `gorm:"column:approved_amount;type:decimal(18,2);not null"`
	// Fee collected before disbursement
	AdhesionFee decimal.Decimal `gorm:"column:adhesion_fee;type:decimal(18,2);not null"`
	// PIX collection identifiers; any of them may be empty
	PixKey       string    `gorm:"column:pix_key;type:text"`
	PixQrCodeURL string    `gorm:"column:pix_qr_code_url;type:text"`
	PixCopyPaste string    `gorm:"column:pix_copy_paste;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Settings) TableName() string { return "admin_settings" }

// UpdateFields is the full set of admin-editable columns. The update always
// writes all of them so PIX identifiers can be cleared back to empty.
type UpdateFields struct {
	ApprovedAmount decimal.Decimal
	AdhesionFee    decimal.Decimal
	PixKey         string
	PixQrCodeURL   string
	PixCopyPaste   string
}
