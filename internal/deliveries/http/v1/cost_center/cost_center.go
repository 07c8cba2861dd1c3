package cost_center

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/erpcore/go-fin-ledger/internal/common/http"
	"github.com/erpcore/go-fin-ledger/internal/common/validation"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/services"
)

type costCenterHandler struct {
	costCenterSvc services.CostCenterService
}

// New cost center handler will initialize the cost-centers/ resources endpoint
func New(app *echo.Group, costCenterSvc services.CostCenterService) {
	handler := costCenterHandler{costCenterSvc: costCenterSvc}
	api := app.Group("/cost-centers")
	api.POST("", handler.createCostCenter)
	api.GET("", handler.listCostCenters)
	api.GET("/:id", handler.getCostCenter)
}

// createCostCenter API create cost center
// @Summary Create cost center
// @Tags CostCenters
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param body body models.DoCreateCostCenterRequest true "body"
// @Success 201 {object} models.CostCenterOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/cost-centers [post]
func (h *costCenterHandler) createCostCenter(c echo.Context) error {
	req := new(models.DoCreateCostCenterRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	created, err := h.costCenterSvc.Create(c.Request().Context(), req.ToCreateIn())
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, created.ToResponse())
}

// listCostCenters API list cost centers
// @Summary List cost centers
// @Tags CostCenters
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param activeOnly query bool false "only active cost centers"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.CostCenterOut}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/cost-centers [get]
func (h *costCenterHandler) listCostCenters(c echo.Context) error {
	req := models.DoListCostCenterRequest{}
	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	costCenters, err := h.costCenterSvc.List(c.Request().Context(), req.ActiveOnly)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	contents := make([]models.CostCenterOut, 0, len(costCenters))
	for _, cc := range costCenters {
		contents = append(contents, cc.ToResponse())
	}

	return http.RestSuccessResponseListWithTotalRows(c, contents, len(contents))
}

// getCostCenter API get cost center
// @Summary Get cost center
// @Tags CostCenters
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "cost center id"
// @Success 200 {object} models.CostCenterOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/cost-centers/{id} [get]
func (h *costCenterHandler) getCostCenter(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return err
	}

	cc, err := h.costCenterSvc.Get(c.Request().Context(), id)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, cc.ToResponse())
}
