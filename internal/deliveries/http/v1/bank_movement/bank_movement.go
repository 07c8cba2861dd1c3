package bank_movement

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/http"
	"github.com/erpcore/go-fin-ledger/internal/common/http/middleware"
	"github.com/erpcore/go-fin-ledger/internal/common/validation"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/services"
)

type bankMovementHandler struct {
	journalSvc services.JournalService
}

// New bank movement handler will initialize the bank-movements/ resources endpoint
func New(app *echo.Group, journalSvc services.JournalService, m middleware.AppMiddleware) {
	handler := bankMovementHandler{journalSvc: journalSvc}
	api := app.Group("/bank-movements")
	api.POST("", handler.postMovement, m.CheckIdempotentRequest)
	api.GET("/:id", handler.getMovement)
	api.PATCH("/:id", handler.updateMovement)
	api.DELETE("/:id", handler.deleteMovement)
	api.POST("/:id/reverse", handler.reverseMovement, m.CheckIdempotentRequest)
}

// postMovement API post a movement on a bank account
// @Summary Post bank movement
// @Description The direction may be omitted for kinds with a fixed direction
// @Tags BankMovements
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param X-Idempotency-Key header string false "X-Idempotency-Key"
// @Param body body models.DoPostMovementRequest true "body"
// @Success 201 {object} models.BankMovementOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-movements [post]
func (h *bankMovementHandler) postMovement(c echo.Context) error {
	req := new(models.DoPostMovementRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToPostIn()
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	movement, err := h.journalSvc.Post(c.Request().Context(), in)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, movement.ToResponse())
}

// getMovement API get bank movement
// @Summary Get bank movement
// @Tags BankMovements
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank movement id"
// @Success 200 {object} models.BankMovementOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-movements/{id} [get]
func (h *bankMovementHandler) getMovement(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	movement, err := h.journalSvc.Get(c.Request().Context(), id)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, movement.ToResponse())
}

// updateMovement API change an unreconciled movement
// @Summary Update bank movement
// @Description Only sent fields change. Movements tied to a settlement or a transfer only accept description and value date
// @Tags BankMovements
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank movement id"
// @Param body body models.DoUpdateMovementRequest true "body"
// @Success 200 {object} models.BankMovementOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-movements/{id} [patch]
func (h *bankMovementHandler) updateMovement(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := new(models.DoUpdateMovementRequest)
	if err = c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	patch, err := req.ToPatch()
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	movement, err := h.journalSvc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, movement.ToResponse())
}

// deleteMovement API delete an unreconciled movement
// @Summary Delete bank movement
// @Description Deleting one leg of a transfer deletes both legs, a reversal is deleted alone
// @Tags BankMovements
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank movement id"
// @Success 204
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-movements/{id} [delete]
func (h *bankMovementHandler) deleteMovement(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err = h.journalSvc.Delete(c.Request().Context(), id); err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}

// reverseMovement API post the opposite of a movement
// @Summary Reverse bank movement
// @Description Works on reconciled movements too, a movement is reversed at most once
// @Tags BankMovements
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param X-Idempotency-Key header string false "X-Idempotency-Key"
// @Param id path int true "bank movement id"
// @Param body body models.DoReverseMovementRequest true "body"
// @Success 201 {object} models.BankMovementOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-movements/{id}/reverse [post]
func (h *bankMovementHandler) reverseMovement(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := new(models.DoReverseMovementRequest)
	if err = c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	valueDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.ValueDate)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	reversal, err := h.journalSvc.Reverse(c.Request().Context(), models.ReverseMovementIn{
		MovementID:  id,
		ValueDate:   valueDate,
		Description: req.Description,
	})
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, reversal.ToResponse())
}
