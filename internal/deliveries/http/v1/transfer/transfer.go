package transfer

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/erpcore/go-fin-ledger/internal/common/http"
	"github.com/erpcore/go-fin-ledger/internal/common/http/middleware"
	"github.com/erpcore/go-fin-ledger/internal/common/validation"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/services"
)

type transferHandler struct {
	transferSvc services.TransferService
}

// New transfer handler will initialize the transfers/ resources endpoint
func New(app *echo.Group, transferSvc services.TransferService, m middleware.AppMiddleware) {
	handler := transferHandler{transferSvc: transferSvc}
	api := app.Group("/transfers")
	api.POST("", handler.createTransfer, m.CheckIdempotentRequest)
}

// createTransfer API move money between two bank accounts
// @Summary Create transfer
// @Description Posts a transfer_out on the source and a transfer_in on the destination, linked to each other
// @Tags Transfers
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param X-Idempotency-Key header string false "X-Idempotency-Key"
// @Param body body models.DoTransferRequest true "body"
// @Success 201 {object} models.TransferResultOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/transfers [post]
func (h *transferHandler) createTransfer(c echo.Context) error {
	req := new(models.DoTransferRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToTransferIn()
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	result, err := h.transferSvc.Transfer(c.Request().Context(), in)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, result.ToResponse())
}
