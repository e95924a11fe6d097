package application

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("application not found")
)

type Status string

const (
	// Step 1 complete: applicant identified, amounts snapshotted
	StatusApproved Status = "approved"
	// Step 2 complete: bank details attached, waiting for the adhesion fee
	StatusPaymentPending Status = "payment_pending"
	// Set by back-office reconciliation only, never by this service
	StatusPaid     Status = "paid"
	StatusRejected Status = "rejected"
)

type Application struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ApplicationID string `gorm:"column:application_id;type:char(32);not null;uniqueIndex:ux_loan_applications_application_id" json:"application_id"`
	// Owning applicant identity from the external identity provider
	UserID string `gorm:"column:user_id;size:64;not null;index:idx_loan_applications_user" json:"user_id"`

	// Personal fields, captured at step 1
	Name  string `gorm:"column:name;size:100" json:"name"`
	Email string `gorm:"column:email;size:255" json:"email"`
	Phone string `gorm:"column:phone;size:15" json:"phone"`
	CPF   string `gorm:"column:cpf;size:14" json:"cpf"`

	// Bank fields, captured at step 2
	BankAgency        string `gorm:"column:bank_agency;size:10" json:"bank_agency"`
	BankAccount       string `gorm:"column:bank_account;size:20" json:"bank_account"`
	BankAccountHolder string `gorm:"column:bank_account_holder;size:100" json:"bank_account_holder"`
	BankAccountCPF    string `gorm:"column:bank_account_cpf;size:14" json:"bank_account_cpf"`

	// Snapshots copied from admin_settings at creation; later settings
	// edits must not change them.
	ApprovedAmount decimal.Decimal `gorm:"column:approved_amount;type:decimal(18,2)" json:"approved_amount"`
	AdhesionFee    decimal.Decimal `gorm:"column:adhesion_fee;type:decimal(18,2)" json:"adhesion_fee"`

	Status    Status         `gorm:"column:status;type:enum('approved','payment_pending','paid','rejected');default:'approved'" json:"status"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Application) TableName() string { return "loan_applications" }
