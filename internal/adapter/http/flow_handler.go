package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"credfacil-backend/internal/adapter/middleware"
	"credfacil-backend/internal/usecase/flow"
)

type FlowHandler struct{ uc *flow.Usecase }

func NewFlowHandler(uc *flow.Usecase) *FlowHandler { return &FlowHandler{uc: uc} }

func (h *FlowHandler) StartSession(c echo.Context) error {
	userID := middleware.UserID(c)
	dto, err := h.uc.Start(c.Request().Context(), userID)
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *FlowHandler) CurrentSession(c echo.Context) error {
	userID := middleware.UserID(c)
	dto, err := h.uc.Current(c.Request().Context(), userID)
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *FlowHandler) SubmitPersonalData(c echo.Context) error {
	var req flow.PersonalDataInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	userID := middleware.UserID(c)
	dto, err := h.uc.SubmitPersonalData(c.Request().Context(), userID, req)
	flowStepTotal.WithLabelValues("personal_data", stepOutcome(err)).Inc()
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *FlowHandler) SubmitBankData(c echo.Context) error {
	var req flow.BankDataInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	userID := middleware.UserID(c)
	dto, err := h.uc.SubmitBankData(c.Request().Context(), userID, req)
	flowStepTotal.WithLabelValues("bank_data", stepOutcome(err)).Inc()
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *FlowHandler) PaymentInstructions(c echo.Context) error {
	userID := middleware.UserID(c)
	dto, err := h.uc.PaymentInstructions(c.Request().Context(), userID)
	if err != nil {
		code, body := errorStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}
