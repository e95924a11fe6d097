package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"credfacil-backend/internal/domain/application"
	"credfacil-backend/internal/domain/settings"
)

var (
	ErrInvalidAmount = errors.New("amounts must be non-negative decimal values")
)

type Usecase struct {
	settings settings.Repository
	apps     application.Repository
}

func NewUsecase(s settings.Repository, a application.Repository) *Usecase {
	return &Usecase{settings: s, apps: a}
}

func (u *Usecase) GetSettings(ctx context.Context) (*SettingsDTO, error) {
	cfg, err := u.settings.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	return &SettingsDTO{
		SettingsID:     cfg.SettingsID,
		ApprovedAmount: cfg.ApprovedAmount,
		AdhesionFee:    cfg.AdhesionFee,
		PixKey:         cfg.PixKey,
		PixQrCodeURL:   cfg.PixQrCodeURL,
		PixCopyPaste:   cfg.PixCopyPaste,
		UpdatedAt:      cfg.UpdatedAt,
	}, nil
}

// SaveSettings updates the singleton in place. Amounts must parse as
// non-negative decimals before the storage call happens at all.
func (u *Usecase) SaveSettings(ctx context.Context, in SaveSettingsInput) error {
	if in.SettingsID == "" {
		return settings.ErrNotFound
	}
	amount, err := decimal.NewFromString(in.ApprovedAmount)
	if err != nil {
		return fmt.Errorf("%w: approved_amount %q", ErrInvalidAmount, in.ApprovedAmount)
	}
	fee, err := decimal.NewFromString(in.AdhesionFee)
	if err != nil {
		return fmt.Errorf("%w: adhesion_fee %q", ErrInvalidAmount, in.AdhesionFee)
	}
	if amount.IsNegative() || fee.IsNegative() {
		return ErrInvalidAmount
	}

	return u.settings.Update(ctx, in.SettingsID, settings.UpdateFields{
		ApprovedAmount: amount,
		AdhesionFee:    fee,
		PixKey:         in.PixKey,
		PixQrCodeURL:   in.PixQrCodeURL,
		PixCopyPaste:   in.PixCopyPaste,
	})
}

// ListApplications returns every application newest-first plus the status
// counts the review panel shows. Pure aggregation, no mutation.
func (u *Usecase) ListApplications(ctx context.Context) (*ApplicationsReport, error) {
	apps, err := u.apps.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &ApplicationsReport{Applications: make([]ApplicationDTO, 0, len(apps))}
	for _, a := range apps {
		report.Applications = append(report.Applications, ApplicationDTO{
			ApplicationID:  a.ApplicationID,
			UserID:         a.UserID,
			Name:           a.Name,
			Email:          a.Email,
			CPF:            a.CPF,
			ApprovedAmount: a.ApprovedAmount,
			AdhesionFee:    a.AdhesionFee,
			Status:         string(a.Status),
			CreatedAt:      a.CreatedAt,
		})
		report.Stats.Total++
		switch a.Status {
		case application.StatusApproved:
			report.Stats.Approved++
		case application.StatusPaymentPending:
			report.Stats.PaymentPending++
		}
	}
	return report, nil
}
