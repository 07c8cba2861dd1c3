package bank_account

import (
	"context"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/erpcore/go-fin-ledger/internal/common/http"
	"github.com/erpcore/go-fin-ledger/internal/common/http/middleware"
	"github.com/erpcore/go-fin-ledger/internal/common/validation"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/services"
)

type bankAccountHandler struct {
	bankAccountSvc services.BankAccountService
	journalSvc     services.JournalService
	reportSvc      services.ReportService
	statementSvc   services.StatementExportService
}

// New bank account handler will initialize the bank-accounts/ resources endpoint
func New(
	app *echo.Group,
	bankAccountSvc services.BankAccountService,
	journalSvc services.JournalService,
	reportSvc services.ReportService,
	statementSvc services.StatementExportService,
	m middleware.AppMiddleware,
) {
	handler := bankAccountHandler{
		bankAccountSvc: bankAccountSvc,
		journalSvc:     journalSvc,
		reportSvc:      reportSvc,
		statementSvc:   statementSvc,
	}
	api := app.Group("/bank-accounts")
	api.POST("", handler.createBankAccount, m.CheckIdempotentRequest)
	api.GET("", handler.listBankAccounts)
	api.GET("/:id", handler.getBankAccount)
	api.POST("/:id/deactivate", handler.deactivateBankAccount)
	api.GET("/:id/balance-audit", handler.auditBalance)
	api.GET("/:id/statement", handler.getStatement)
	api.GET("/:id/statement/export", handler.exportStatement)
	api.GET("/:id/reconciliation-worklist", handler.getReconciliationWorklist)
	api.POST("/:id/reconcile", handler.reconcile)
	api.POST("/:id/unreconcile", handler.unreconcile)
	api.GET("/:id/movements", handler.listMovements)
}

// createBankAccount API create bank account
// @Summary Create bank account
// @Description Create a bank account with its opening balance
// @Tags BankAccounts
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param X-Idempotency-Key header string false "X-Idempotency-Key"
// @Param body body models.DoCreateBankAccountRequest true "body"
// @Success 201 {object} models.BankAccountOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-accounts [post]
func (h *bankAccountHandler) createBankAccount(c echo.Context) error {
	req := new(models.DoCreateBankAccountRequest)
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

	account, err := h.bankAccountSvc.Create(c.Request().Context(), in)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, account.ToResponse())
}

// listBankAccounts API list bank accounts
// @Summary List bank accounts
// @Tags BankAccounts
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param activeOnly query bool false "only active accounts"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.BankAccountOut}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-accounts [get]
func (h *bankAccountHandler) listBankAccounts(c echo.Context) error {
	filter := models.BankAccountFilter{}
	if err := c.Bind(&filter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	accounts, err := h.bankAccountSvc.List(c.Request().Context(), filter)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	contents := make([]models.BankAccountOut, 0, len(accounts))
	for _, account := range accounts {
		contents = append(contents, account.ToResponse())
	}

	return http.RestSuccessResponseListWithTotalRows(c, contents, len(contents))
}

// getBankAccount API get bank account
// @Summary Get bank account
// @Tags BankAccounts
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank account id"
// @Success 200 {object} models.BankAccountOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-accounts/{id} [get]
func (h *bankAccountHandler) getBankAccount(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	account, err := h.bankAccountSvc.Get(c.Request().Context(), id)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, account.ToResponse())
}

// deactivateBankAccount API deactivate bank account
// @Summary Deactivate bank account
// @Description An inactive account keeps its history but accepts no new movement
// @Tags BankAccounts
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank account id"
// @Success 200 {object} models.BankAccountOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-accounts/{id}/deactivate [post]
func (h *bankAccountHandler) deactivateBankAccount(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	ctx := c.Request().Context()
	if err = h.bankAccountSvc.Deactivate(ctx, id); err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	account, err := h.bankAccountSvc.Get(ctx, id)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, account.ToResponse())
}

// auditBalance API recompute the balance of a bank account
// @Summary Audit bank account balance
// @Description Compares the cached balance with opening balance plus every movement
// @Tags BankAccounts
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank account id"
// @Success 200 {object} models.BalanceAuditOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-accounts/{id}/balance-audit [get]
func (h *bankAccountHandler) auditBalance(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	audit, err := h.bankAccountSvc.RecomputeBalance(c.Request().Context(), id)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, audit.ToResponse())
}

// getStatement API bank account statement
// @Summary Get bank account statement
// @Tags BankAccounts
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank account id"
// @Param from query string true "first value date, YYYY-MM-DD"
// @Param to query string true "last value date, YYYY-MM-DD"
// @Success 200 {object} models.StatementOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-accounts/{id}/statement [get]
func (h *bankAccountHandler) getStatement(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := models.DoStatementRequest{}
	if err = c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	from, to, err := req.Range()
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	statement, err := h.journalSvc.Statement(c.Request().Context(), id, from, to)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, statement.ToResponse())
}

// exportStatement API download the statement as a workbook
// @Summary Export bank account statement
// @Tags BankAccounts
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank account id"
// @Param from query string true "first value date, YYYY-MM-DD"
// @Param to query string true "last value date, YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-accounts/{id}/statement/export [get]
func (h *bankAccountHandler) exportStatement(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := models.DoStatementRequest{}
	if err = c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	from, to, err := req.Range()
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	file, err := h.statementSvc.ExportStatement(c.Request().Context(), id, from, to)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestAttachmentResponse(c, file.FileName, file.ContentType, file.Data)
}

// getReconciliationWorklist API unreconciled movements of an account
// @Summary Get reconciliation worklist
// @Tags BankAccounts
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank account id"
// @Success 200 {object} models.ReconciliationWorklistOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-accounts/{id}/reconciliation-worklist [get]
func (h *bankAccountHandler) getReconciliationWorklist(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	worklist, err := h.reportSvc.ReconciliationWorklist(c.Request().Context(), id)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, worklist.ToResponse())
}

// reconcile API mark movements as matched with the bank statement
// @Summary Reconcile movements
// @Description Applies to every listed movement or to none of them
// @Tags BankAccounts
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank account id"
// @Param body body models.DoReconcileRequest true "body"
// @Success 204
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-accounts/{id}/reconcile [post]
func (h *bankAccountHandler) reconcile(c echo.Context) error {
	return h.toggleReconciled(c, h.journalSvc.Reconcile)
}

// unreconcile API clear the reconciled flag of movements
// @Summary Unreconcile movements
// @Tags BankAccounts
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank account id"
// @Param body body models.DoReconcileRequest true "body"
// @Success 204
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-accounts/{id}/unreconcile [post]
func (h *bankAccountHandler) unreconcile(c echo.Context) error {
	return h.toggleReconciled(c, h.journalSvc.Unreconcile)
}

type reconcileFunc func(ctx context.Context, accountID int64, ids []int64) error

func (h *bankAccountHandler) toggleReconciled(c echo.Context, apply reconcileFunc) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := new(models.DoReconcileRequest)
	if err = c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	if err = apply(c.Request().Context(), id, req.MovementIDs); err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}

// listMovements API list movements of an account
// @Summary List bank movements of an account
// @Tags BankAccounts
// @Produce  json
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Param id path int true "bank account id"
// @Param from query string false "first value date, YYYY-MM-DD"
// @Param to query string false "last value date, YYYY-MM-DD"
// @Param reconciled query bool false "reconciled flag"
// @Param limit query int false "page size"
// @Param offset query int false "rows to skip"
// @Success 200 {object} http.RestPaginationResponseModel{contents=[]models.BankMovementOut}
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/bank-accounts/{id}/movements [get]
func (h *bankAccountHandler) listMovements(c echo.Context) error {
	id, err := http.PathParamID(c, "id")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := models.DoListMovementRequest{}
	if err = c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	filter, err := req.ToFilter()
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	movements, total, err := h.journalSvc.ListByAccount(c.Request().Context(), id, filter)
	if err != nil {
		return http.RestLedgerErrorResponse(c, err)
	}

	return http.RestSuccessResponseOffsetPagination(c, models.ToMovementResponses(movements), req.Limit, req.Offset, int(total))
}
