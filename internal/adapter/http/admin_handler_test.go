package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"credfacil-backend/internal/adapter/middleware"
	appDomain "credfacil-backend/internal/domain/application"
	settingsDomain "credfacil-backend/internal/domain/settings"
	"credfacil-backend/internal/testutil/applicationmock"
	"credfacil-backend/internal/testutil/settingsmock"
	"credfacil-backend/internal/usecase/admin"
)

// callAdmin routes through RequireUser + RequireAdmin like main does.
func callAdmin(t *testing.T, h echo.HandlerFunc, method, target, body, userID, role string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	if role != "" {
		req.Header.Set(middleware.HeaderUserRole, role)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wrapped := middleware.RequireUser()(middleware.RequireAdmin()(h))
	if err := wrapped(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func adminSettingsRepo() *settingsmock.Repo {
	return &settingsmock.Repo{
		GetActiveFn: func(ctx context.Context) (*settingsDomain.Settings, error) {
			return &settingsDomain.Settings{
				SettingsID:     "11111111111111111111111111111111",
				ApprovedAmount: decimal.RequireFromString("1500.00"),
				AdhesionFee:    decimal.RequireFromString("49.90"),
			}, nil
		},
	}
}

func TestGetSettings_AdminOnly(t *testing.T) {
	h := NewAdminHandler(admin.NewUsecase(adminSettingsRepo(), &applicationmock.Repo{}))

	// Non-admin denied
	rec := callAdmin(t, h.GetSettings, http.MethodGet, "/api/v1/admin/settings", "", "user-1", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("code=%d", rec.Code)
	}

	// Admin allowed
	rec = callAdmin(t, h.GetSettings, http.MethodGet, "/api/v1/admin/settings", "", "admin-1", middleware.RoleAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSaveSettings_NegativeFeeRejectedBeforeStorage(t *testing.T) {
	repo := adminSettingsRepo()
	repo.UpdateFn = func(ctx context.Context, id string, f settingsDomain.UpdateFields) error {
		t.Fatal("Update must not be called")
		return nil
	}
	h := NewAdminHandler(admin.NewUsecase(repo, &applicationmock.Repo{}))

	payload := `{"settings_id":"11111111111111111111111111111111","approved_amount":"1500.00","adhesion_fee":"-5"}`
	rec := callAdmin(t, h.SaveSettings, http.MethodPut, "/api/v1/admin/settings", payload, "admin-1", middleware.RoleAdmin)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Details) == 0 || body.Details[0].Field != "AdhesionFee" {
		t.Fatalf("details: %+v", body.Details)
	}
}

func TestSaveSettings_OK(t *testing.T) {
	var saved settingsDomain.UpdateFields
	repo := adminSettingsRepo()
	repo.UpdateFn = func(ctx context.Context, id string, f settingsDomain.UpdateFields) error {
		saved = f
		return nil
	}
	h := NewAdminHandler(admin.NewUsecase(repo, &applicationmock.Repo{}))

	payload := `{"settings_id":"11111111111111111111111111111111","approved_amount":"2000.00","adhesion_fee":"59.90","pix_key":"new@key"}`
	rec := callAdmin(t, h.SaveSettings, http.MethodPut, "/api/v1/admin/settings", payload, "admin-1", middleware.RoleAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	if !saved.ApprovedAmount.Equal(decimal.RequireFromString("2000.00")) || saved.PixKey != "new@key" {
		t.Fatalf("saved: %+v", saved)
	}
}

func TestSaveSettings_UnknownIDSurfacesStorageError(t *testing.T) {
	repo := adminSettingsRepo()
	repo.UpdateFn = func(ctx context.Context, id string, f settingsDomain.UpdateFields) error {
		return settingsDomain.ErrNotFound
	}
	h := NewAdminHandler(admin.NewUsecase(repo, &applicationmock.Repo{}))

	payload := `{"settings_id":"ffffffffffffffffffffffffffffffff","approved_amount":"2000.00","adhesion_fee":"59.90"}`
	rec := callAdmin(t, h.SaveSettings, http.MethodPut, "/api/v1/admin/settings", payload, "admin-1", middleware.RoleAdmin)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestListApplications_ReportShape(t *testing.T) {
	now := time.Now().UTC()
	apps := &applicationmock.Repo{
		ListAllFn: func(ctx context.Context) ([]appDomain.Application, error) {
			return []appDomain.Application{
				{ApplicationID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Name: "Newest", Status: appDomain.StatusPaymentPending, CreatedAt: now},
				{ApplicationID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Name: "Oldest", Status: appDomain.StatusApproved, CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	h := NewAdminHandler(admin.NewUsecase(adminSettingsRepo(), apps))

	rec := callAdmin(t, h.ListApplications, http.MethodGet, "/api/v1/admin/applications", "", "admin-1", middleware.RoleAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Applications []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"applications"`
		Stats struct {
			Total          int `json:"total"`
			Approved       int `json:"approved"`
			PaymentPending int `json:"payment_pending"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Stats.Total != 2 || body.Stats.Approved != 1 || body.Stats.PaymentPending != 1 {
		t.Fatalf("stats: %+v", body.Stats)
	}
	if body.Applications[0].Name != "Newest" {
		t.Fatalf("order: %+v", body.Applications)
	}
}
