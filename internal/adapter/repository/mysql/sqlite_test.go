package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type settingsSQLite struct {
	ID             uint64          `gorm:"primaryKey;column:id"`
	SettingsID     string          `gorm:"size:32;column:settings_id"`
	ApprovedAmount decimal.Decimal `gorm:"column:approved_amount"`
	AdhesionFee    decimal.Decimal `gorm:"column:adhesion_fee"`
	PixKey         string          `gorm:"column:pix_key"`
	PixQrCodeURL   string          `gorm:"column:pix_qr_code_url"`
	PixCopyPaste   string          `gorm:"column:pix_copy_paste"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (settingsSQLite) TableName() string { return "admin_settings" }

type applicationSQLite struct {
	ID                uint64          `gorm:"primaryKey;column:id"`
	ApplicationID     string          `gorm:"size:32;column:application_id"`
	UserID            string          `gorm:"size:64;column:user_id"`
	Name              string          `gorm:"column:name"`
	Email             string          `gorm:"column:email"`
	Phone             string          `gorm:"column:phone"`
	CPF               string          `gorm:"column:cpf"`
	BankAgency        string          `gorm:"column:bank_agency"`
	BankAccount       string          `gorm:"column:bank_account"`
	BankAccountHolder string          `gorm:"column:bank_account_holder"`
	BankAccountCPF    string          `gorm:"column:bank_account_cpf"`
	ApprovedAmount    decimal.Decimal `gorm:"column:approved_amount"`
	AdhesionFee       decimal.Decimal `gorm:"column:adhesion_fee"`
	Status            string          `gorm:"type:text;column:status"` // ← no enum
	CreatedAt         time.Time       `gorm:"column:created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "loan_applications" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, not the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&settingsSQLite{}, &applicationSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
