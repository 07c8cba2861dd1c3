package recurring

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/erpcore/go-fin-ledger/internal/common/http"
	"github.com/erpcore/go-fin-ledger/internal/common/validation"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/services"
)

type recurringHandler struct {
	recurringSvc services.RecurringService
}

// New recurring handler will initialize the recurring-templates/ resources endpoint
func New(app *echo.Group, recurringSvc services.RecurringService) {
	handler := recurringHandler{recurringSvc: recurringSvc}
	api := app.Group("/recurring-templates")
	api.POST("", handler.createTemplate)
	api.GET("", handler.listTemplates)
	api.POST("/generate", handler.generate)
	api.POST("/:id/deactivate", handler.deactivateTemplate)
}

// createTemplate API create recurring template
// @Summary Create recurring template
// @Description Create a monthly template, obligations are generated per period
// @Tags RecurringTemplates
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param body body models.DoCreateRecurringTemplateRequest true "body"
// @Success 201 {object} models.RecurringTemplateOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/recurring-templates [post]
func (h *recurringHandler) createTemplate(c echo.Context) error {
	req := new(models.DoCreateRecurringTemplateRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToCreateIn()
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	template, err := h.recurringSvc.CreateTemplate(c.Request().Context(), in)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, template.ToResponse())
}

// listTemplates API list recurring templates
// @Summary List recurring templates
// @Tags RecurringTemplates
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param activeOnly query bool false "only active templates"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.RecurringTemplateOut}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/recurring-templates [get]
func (h *recurringHandler) listTemplates(c echo.Context) error {
	req := models.DoListRecurringTemplateRequest{}
	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	templates, err := h.recurringSvc.ListTemplates(c.Request().Context(), req.ActiveOnly)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	contents := make([]models.RecurringTemplateOut, 0, len(templates))
	for _, template := range templates {
		contents = append(contents, template.ToResponse())
	}

	return http.RestSuccessResponseListWithTotalRows(c, contents, len(contents))
}

// deactivateTemplate API deactivate recurring template
// @Summary Deactivate recurring template
// @Description Obligations already generated are kept
// @Tags RecurringTemplates
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "template id"
// @Success 204
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/recurring-templates/{id}/deactivate [post]
func (h *recurringHandler) deactivateTemplate(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return err
	}

	if err = h.recurringSvc.DeactivateTemplate(c.Request().Context(), id); err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}

// generate API generate obligations of a period
// @Summary Generate recurring obligations
// @Description Running it twice for the same period generates nothing the second time
// @Tags RecurringTemplates
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param body body models.DoGenerateRecurringRequest true "body"
// @Success 200 {object} models.GenerationResultOut
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/recurring-templates/generate [post]
func (h *recurringHandler) generate(c echo.Context) error {
	req := new(models.DoGenerateRecurringRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	period, err := models.NewPeriod(req.Year, req.Month)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	result, err := h.recurringSvc.GenerateForPeriod(c.Request().Context(), period)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, result.ToResponse())
}
