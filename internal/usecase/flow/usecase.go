package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"credfacil-backend/internal/domain/application"
	domain "credfacil-backend/internal/domain/flow"
	"credfacil-backend/internal/domain/settings"
	"credfacil-backend/pkg/id"
)

type Usecase struct {
	settings settings.Repository
	apps     application.Repository
	sessions domain.SessionStore
}

func NewUsecase(s settings.Repository, a application.Repository, st domain.SessionStore) *Usecase {
	return &Usecase{settings: s, apps: a, sessions: st}
}

// Start opens (or resumes) the user's flow session. The settings row is
// read exactly once here; every later step works off the snapshot.
func (u *Usecase) Start(ctx context.Context, userID string) (*SessionDTO, error) {
	s, err := u.sessions.Get(ctx, userID)
	switch {
	case err == nil:
		return toSessionDTO(s), nil
	case !errors.Is(err, domain.ErrSessionNotFound):
		return nil, err
	}

	cfg, err := u.settings.GetActive(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			return nil, domain.ErrNotReady
		}
		return nil, err
	}

	now := time.Now().UTC()
	s = &domain.Session{
		UserID: userID,
		Step:   domain.StepPersonalData,
		Settings: domain.SettingsSnapshot{
			SettingsID:     cfg.SettingsID,
			ApprovedAmount: cfg.ApprovedAmount,
			AdhesionFee:    cfg.AdhesionFee,
			PixKey:         cfg.PixKey,
			PixQrCodeURL:   cfg.PixQrCodeURL,
			PixCopyPaste:   cfg.PixCopyPaste,
		},
		StartedAt: now,
		UpdatedAt: now,
	}
	if err := u.sessions.Put(ctx, s); err != nil {
		return nil, err
	}
	return toSessionDTO(s), nil
}

// Current returns the session as-is, restoring an in-flight flow.
func (u *Usecase) Current(ctx context.Context, userID string) (*SessionDTO, error) {
	s, err := u.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toSessionDTO(s), nil
}

// SubmitPersonalData runs step 1: validate, create the application with
// snapshot amounts, advance to bank data. Any failure leaves the session
// at personal_data with nothing persisted.
func (u *Usecase) SubmitPersonalData(ctx context.Context, userID string, in PersonalDataInput) (*SessionDTO, error) {
	s, err := u.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.Step != domain.StepPersonalData {
		return nil, domain.ErrInvalidStep
	}

	in, err = validatePersonal(in)
	if err != nil {
		return nil, err
	}

	app := &application.Application{
		ApplicationID:  id.NewID32(),
		UserID:         userID,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		CPF:            in.CPF,
		ApprovedAmount: s.Settings.ApprovedAmount,
		AdhesionFee:    s.Settings.AdhesionFee,
		Status:         application.StatusApproved,
	}
	if err := u.apps.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.ApplicationID = app.ApplicationID
	s.CPF = in.CPF
	s.Step = domain.StepBankData
	s.UpdatedAt = time.Now().UTC()
	if err := u.sessions.Put(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return toSessionDTO(s), nil
}

// SubmitBankData runs step 2: validate, cross-check the holder CPF against
// the step-1 CPF, then attach bank details and move the application to
// payment_pending. The cross-field check runs before the update call, so no
// record ever carries mismatched bank data.
func (u *Usecase) SubmitBankData(ctx context.Context, userID string, in BankDataInput) (*SessionDTO, error) {
	s, err := u.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.Step != domain.StepBankData {
		return nil, domain.ErrInvalidStep
	}

	in, err = validateBank(in)
	if err != nil {
		return nil, err
	}
	if in.HolderCPF != s.CPF {
		return nil, &domain.ValidationError{
			Field:   "holder_cpf",
			Message: "account holder CPF must match the applicant CPF",
		}
	}

	app, err := u.apps.GetByApplicationID(ctx, s.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("load application: %w", err)
	}
	if app.UserID != userID {
		return nil, application.ErrNotFound
	}

	app.BankAgency = in.Agency
	app.BankAccount = in.Account
	app.BankAccountHolder = in.HolderName
	app.BankAccountCPF = in.HolderCPF
	app.Status = application.StatusPaymentPending
	if err := u.apps.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	s.Step = domain.StepPayment
	s.UpdatedAt = time.Now().UTC()
	if err := u.sessions.Put(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return toSessionDTO(s), nil
}

// PaymentInstructions renders the terminal step from the session snapshot.
// No mutation, no transition; reconciliation happens out of band.
func (u *Usecase) PaymentInstructions(ctx context.Context, userID string) (*PaymentInstructionsDTO, error) {
	s, err := u.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.Step != domain.StepPayment {
		return nil, domain.ErrInvalidStep
	}
	return &PaymentInstructionsDTO{
		AdhesionFee:  s.Settings.AdhesionFee,
		PixKey:       s.Settings.PixKey,
		PixQrCodeURL: s.Settings.PixQrCodeURL,
		PixCopyPaste: s.Settings.PixCopyPaste,
	}, nil
}

func toSessionDTO(s *domain.Session) *SessionDTO {
	return &SessionDTO{
		Step:           string(s.Step),
		ApprovedAmount: s.Settings.ApprovedAmount,
		AdhesionFee:    s.Settings.AdhesionFee,
		ApplicationID:  s.ApplicationID,
		StartedAt:      s.StartedAt,
	}
}
