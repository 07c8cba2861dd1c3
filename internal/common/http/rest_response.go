package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestPaginationResponseModel struct {
		Kind       string      `json:"kind" example:"collection"`
		Contents   interface{} `json:"contents"`
		Pagination Pagination  `json:"pagination"`
	}

	Pagination struct {
		Limit     int `json:"limit" example:"50"`
		Offset    int `json:"offset" example:"0"`
		TotalRows int `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestSuccessResponseOffsetPagination(c echo.Context, data interface{}, limit, offset, totalRows int) error {
	return c.JSON(http.StatusOK, RestPaginationResponseModel{
		Kind:     "collection",
		Contents: data,
		Pagination: Pagination{
			Limit:     limit,
			Offset:    offset,
			TotalRows: totalRows,
		},
	})
}

// RestAttachmentResponse streams a generated file as a download.
func RestAttachmentResponse(c echo.Context, fileName, contentType string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Blob(http.StatusOK, contentType, data)
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = fmt.Sprintf("%v", echoErr.Message)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

// RestErrorValidationResponse answers 422 with every validation failure.
func RestErrorValidationResponse(c echo.Context, errs error) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	var merr *multierror.Error
	if errors.As(errs, &merr) {
		res.Errors = merr.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

type errorMapping struct {
	err    error
	status int
	key    string
}

var ledgerErrorMappings = []errorMapping{
	{common.ErrDataNotFound, http.StatusNotFound, models.ErrKeyDataNotFound},
	{common.ErrDataExist, http.StatusConflict, models.ErrKeyDataExist},
	{common.ErrStorageConflict, http.StatusConflict, models.ErrKeyStorageConflict},
	{common.ErrAlreadyReversed, http.StatusConflict, models.ErrKeyAlreadyReversed},
	{common.ErrInvalidFormatDate, http.StatusBadRequest, models.ErrKeyInvalidFormatDate},
	{common.ErrValidation, http.StatusUnprocessableEntity, models.ErrKeyBadRequest},
	{common.ErrInvalidAmount, http.StatusUnprocessableEntity, models.ErrKeyInvalidAmount},
	{common.ErrAlreadyReconciled, http.StatusUnprocessableEntity, models.ErrKeyAlreadyReconciled},
	{common.ErrAlreadySettled, http.StatusUnprocessableEntity, models.ErrKeyAlreadySettled},
	{common.ErrOverSettlement, http.StatusUnprocessableEntity, models.ErrKeyOverSettlement},
	{common.ErrInsufficientFunds, http.StatusUnprocessableEntity, models.ErrKeyInsufficientFunds},
	{common.ErrSameAccount, http.StatusUnprocessableEntity, models.ErrKeySameAccount},
	{common.ErrAccountInactive, http.StatusUnprocessableEntity, models.ErrKeyAccountInactive},
	{common.ErrInvalidDirection, http.StatusUnprocessableEntity, models.ErrKeyInvalidDirection},
	{common.ErrLinkedMovement, http.StatusUnprocessableEntity, models.ErrKeyLinkedMovement},
	{common.ErrInvalidPeriod, http.StatusUnprocessableEntity, models.ErrKeyInvalidPeriod},
	{common.ErrInvalidInstallment, http.StatusUnprocessableEntity, models.ErrKeyInvalidInstallment},
	{common.ErrInvalidDueDay, http.StatusUnprocessableEntity, models.ErrKeyInvalidDueDay},
	{common.ErrCostCenterInactive, http.StatusUnprocessableEntity, models.ErrKeyCostCenterInactive},
	{common.ErrJobAlreadyRunning, http.StatusConflict, models.ErrKeyJobAlreadyRunning},
}

// RestLedgerErrorResponse maps ledger errors to a status and a stable code,
// the message keeps the full error chain.
func RestLedgerErrorResponse(c echo.Context, err error) error {
	for _, m := range ledgerErrorMappings {
		if errors.Is(err, m.err) {
			return c.JSON(m.status, RestErrorResponseModel{
				Status:  "error",
				Code:    models.GetErrCode(m.key),
				Message: err.Error(),
			})
		}
	}
	return RestErrorResponse(c, http.StatusInternalServerError, err)
}
