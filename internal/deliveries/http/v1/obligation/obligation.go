package obligation

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

type obligationHandler struct {
	obligationSvc services.ObligationService
	settlementSvc services.SettlementService
	offsetSvc     services.OffsetService
}

// New obligation handler will initialize the payables/, receivables/ and obligations/ resources endpoint
func New(
	app *echo.Group,
	obligationSvc services.ObligationService,
	settlementSvc services.SettlementService,
	offsetSvc services.OffsetService,
	m middleware.AppMiddleware,
) {
	handler := obligationHandler{
		obligationSvc: obligationSvc,
		settlementSvc: settlementSvc,
		offsetSvc:     offsetSvc,
	}
	app.POST("/payables", handler.createPayable)
	app.POST("/receivables", handler.createReceivable)

	api := app.Group("/obligations")
	api.GET("", handler.listObligations)
	api.POST("/offsets", handler.offset, m.CheckIdempotentRequest)
	api.GET("/:id", handler.getObligation)
	api.POST("/:id/settle", handler.settle, m.CheckIdempotentRequest)
	api.POST("/:id/reschedule", handler.reschedule)
	api.GET("/:id/settlements", handler.listSettlements)
}

// createPayable API create payable
// @Summary Create payable
// @Description Registers an amount owed to a supplier
// @Tags Obligations
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param body body models.DoCreateObligationRequest true "body"
// @Success 201 {object} models.ObligationOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/payables [post]
func (h *obligationHandler) createPayable(c echo.Context) error {
	return h.createObligation(c, models.ObligationPayable)
}

// createReceivable API create receivable
// @Summary Create receivable
// @Description Registers an amount a customer owes
// @Tags Obligations
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param body body models.DoCreateObligationRequest true "body"
// @Success 201 {object} models.ObligationOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/receivables [post]
func (h *obligationHandler) createReceivable(c echo.Context) error {
	return h.createObligation(c, models.ObligationReceivable)
}

func (h *obligationHandler) createObligation(c echo.Context, direction models.ObligationDirection) error {
	req := new(models.DoCreateObligationRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToCreateIn(direction)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	ctx := c.Request().Context()
	var created models.Obligation
	if direction == models.ObligationPayable {
		created, err = h.obligationSvc.CreatePayable(ctx, in)
	} else {
		created, err = h.obligationSvc.CreateReceivable(ctx, in)
	}
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, created.ToResponse())
}

// listObligations API list obligations
// @Summary List obligations
// @Tags Obligations
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param direction query string false "payable or receivable"
// @Param status query string false "pending, partial or settled"
// @Param counterparty query string false "counterparty"
// @Param dueFrom query string false "first due date, YYYY-MM-DD"
// @Param dueTo query string false "last due date, YYYY-MM-DD"
// @Param limit query int false "page size"
// @Param offset query int false "rows to skip"
// @Success 200 {object} http.RestPaginationResponseModel{contents=[]models.ObligationOut}
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/obligations [get]
func (h *obligationHandler) listObligations(c echo.Context) error {
	req := models.DoListObligationRequest{}
	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	filter, err := req.ToFilter()
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	obligations, total, err := h.obligationSvc.List(c.Request().Context(), filter)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponseOffsetPagination(c, models.ToObligationResponses(obligations), req.Limit, req.Offset, int(total))
}

// getObligation API get obligation
// @Summary Get obligation
// @Tags Obligations
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "obligation id"
// @Success 200 {object} models.ObligationOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/obligations/{id} [get]
func (h *obligationHandler) getObligation(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	obligation, err := h.obligationSvc.Get(c.Request().Context(), id)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, obligation.ToResponse())
}

// settle API pay a payable or receive a receivable
// @Summary Settle obligation
// @Description Applies the amount to the obligation and posts the matching bank movement together
// @Tags Obligations
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param X-Idempotency-Key header string false "X-Idempotency-Key"
// @Param id path int true "obligation id"
// @Param body body models.DoSettleRequest true "body"
// @Success 201 {object} models.SettlementResultOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/obligations/{id}/settle [post]
func (h *obligationHandler) settle(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := new(models.DoSettleRequest)
	if err = c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToSettleIn(id)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	result, err := h.settlementSvc.Settle(c.Request().Context(), in)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, result.ToResponse())
}

// reschedule API move the due date of an open obligation
// @Summary Reschedule obligation
// @Tags Obligations
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "obligation id"
// @Param body body models.DoRescheduleRequest true "body"
// @Success 200 {object} models.ObligationOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/obligations/{id}/reschedule [post]
func (h *obligationHandler) reschedule(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := new(models.DoRescheduleRequest)
	if err = c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	dueDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.DueDate)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	obligation, err := h.obligationSvc.Reschedule(c.Request().Context(), id, dueDate)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, obligation.ToResponse())
}

// listSettlements API settlement history of an obligation
// @Summary List settlement history
// @Tags Obligations
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "obligation id"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.SettlementHistoryOut}
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/obligations/{id}/settlements [get]
func (h *obligationHandler) listSettlements(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	histories, err := h.obligationSvc.ListSettlementHistory(c.Request().Context(), id)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, models.ToSettlementHistoryResponses(histories), len(histories))
}

// offset API settle a payable against a receivable
// @Summary Offset obligations
// @Description No bank movement is posted and no balance changes
// @Tags Obligations
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param X-Idempotency-Key header string false "X-Idempotency-Key"
// @Param body body models.DoOffsetRequest true "body"
// @Success 201 {object} models.OffsetResultOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/obligations/offsets [post]
func (h *obligationHandler) offset(c echo.Context) error {
	req := new(models.DoOffsetRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToOffsetIn()
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	result, err := h.offsetSvc.Offset(c.Request().Context(), in)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, result.ToResponse())
}
