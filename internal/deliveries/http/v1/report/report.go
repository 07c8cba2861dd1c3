package report

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/erpcore/go-fin-ledger/internal/common/http"
	"github.com/erpcore/go-fin-ledger/internal/common/validation"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/services"
)

type reportHandler struct {
	reportSvc services.ReportService
}

// New report handler will initialize the reports/ resources endpoint
func New(app *echo.Group, reportSvc services.ReportService) {
	handler := reportHandler{reportSvc: reportSvc}
	api := app.Group("/reports")
	api.GET("/cash-flow", handler.getCashFlow)
}

// getCashFlow API project cash position
// @Summary Cash flow projection
// @Description Current cash plus open receivables minus open payables due within the range
// @Tags Reports
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param from query string true "from date (YYYY-MM-DD)"
// @Param to query string true "to date (YYYY-MM-DD)"
// @Success 200 {object} models.CashFlowProjectionOut
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/reports/cash-flow [get]
func (h *reportHandler) getCashFlow(c echo.Context) error {
	req := models.DoStatementRequest{}
	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	from, to, err := req.Range()
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	projection, err := h.reportSvc.CashFlowProjection(c.Request().Context(), from, to)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, projection.ToResponse())
}
