package installment

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/http"
	"github.com/erpcore/go-fin-ledger/internal/common/validation"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/services"
)

type installmentHandler struct {
	defaultIntervalDays int
	installmentSvc      services.InstallmentService
}

// New installment handler will initialize the installment-plans/ resources endpoint
func New(conf config.Config, app *echo.Group, installmentSvc services.InstallmentService) {
	handler := installmentHandler{
		defaultIntervalDays: conf.LedgerConfig.DefaultInstallmentIntervalDays,
		installmentSvc:      installmentSvc,
	}
	api := app.Group("/installment-plans")
	api.POST("", handler.createPlan)
	api.POST("/preview", handler.preview)
}

// preview API split a principal without storing anything
// @Summary Preview installment plan
// @Description Every installment is round(principal/count, 2), the drift against the principal is reported and not corrected
// @Tags InstallmentPlans
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param body body models.DoInstallmentPreviewRequest true "body"
// @Success 200 {object} models.InstallmentPreviewOut
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/installment-plans/preview [post]
func (h *installmentHandler) preview(c echo.Context) error {
	req := new(models.DoInstallmentPreviewRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	firstDueDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.FirstDueDate)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	installments, err := h.installmentSvc.Split(req.Principal, req.Count, firstDueDate, req.IntervalDays)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, models.NewInstallmentPreview(req.Principal, installments))
}

// createPlan API create one obligation per installment
// @Summary Create installment plan
// @Description The obligations of a plan are created together or not at all
// @Tags InstallmentPlans
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param body body models.DoInstallmentPlanRequest true "body"
// @Success 201 {object} http.RestTotalRowResponseModel{contents=[]models.ObligationOut}
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/installment-plans [post]
func (h *installmentHandler) createPlan(c echo.Context) error {
	req := new(models.DoInstallmentPlanRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToPlanIn(h.defaultIntervalDays)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	obligations, err := h.installmentSvc.CreatePlan(c.Request().Context(), in)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, http.RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  models.ToObligationResponses(obligations),
		TotalRows: len(obligations),
	})
}
