package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"credfacil-backend/internal/usecase/admin"
)

type AdminHandler struct{ uc *admin.Usecase }

func NewAdminHandler(uc *admin.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

type saveSettingsReq struct {
	SettingsID     string `json:"settings_id"     validate:"required"`
	ApprovedAmount string `json:"approved_amount" validate:"required,money"`
	AdhesionFee    string `json:"adhesion_fee"    validate:"required,money"`
	PixKey         string `json:"pix_key"`
	PixQrCodeURL   string `json:"pix_qr_code_url"`
	PixCopyPaste   string `json:"pix_copy_paste"`
}

func (h *AdminHandler) GetSettings(c echo.Context) error {
	dto, err := h.uc.GetSettings(c.Request().Context())
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) SaveSettings(c echo.Context) error {
	var req saveSettingsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		adminSavesTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	err := h.uc.SaveSettings(c.Request().Context(), admin.SaveSettingsInput{
		SettingsID:     req.SettingsID,
		ApprovedAmount: req.ApprovedAmount,
		AdhesionFee:    req.AdhesionFee,
		PixKey:         req.PixKey,
		PixQrCodeURL:   req.PixQrCodeURL,
		PixCopyPaste:   req.PixCopyPaste,
	})
	adminSavesTotal.WithLabelValues(stepOutcome(err)).Inc()
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "settings saved"})
}

func (h *AdminHandler) ListApplications(c echo.Context) error {
	report, err := h.uc.ListApplications(c.Request().Context())
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, report)
}
