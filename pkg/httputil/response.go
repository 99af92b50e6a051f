package httputil

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/pkg/errors"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response wraps all API responses
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{Status: StatusSuccess, Data: data}
}

func NewErrorResponse(message string) *Response {
	return &Response{Status: StatusError, Message: message}
}

// RespondWithSuccess sends data in the success envelope.
func RespondWithSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, NewSuccessResponse(data))
}

// RespondDeleted answers a successful delete of the named entity.
func RespondDeleted(c *gin.Context, label string) {
	c.JSON(http.StatusOK, &Response{
		Status:  StatusSuccess,
		Message: label + " deleted successfully",
	})
}

// Fail hands err to the error middleware and stops the handler chain.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// BindJSON decodes the request body into v. Validator failures are passed on
// as they are so the validation middleware can list the fields. A body cut
// off by http.MaxBytesReader is 413; anything else is a malformed body.
func BindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			c.Abort()
			return false
		}
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			Fail(c, errors.PayloadTooLarge(tooLarge.Limit, err))
			return false
		}
		Fail(c, errors.BadRequest("Invalid request body", err))
		return false
	}
	return true
}

// ParsePage reads skip and limit from the query string.
func ParsePage(c *gin.Context) (model.Page, error) {
	page := model.DefaultPage()

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return page, errors.BadRequest("skip must be a non-negative integer", err)
		}
		page.Offset = skip
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > model.MaxPageLimit {
			return page, errors.BadRequest(fmt.Sprintf("limit must be between 1 and %d", model.MaxPageLimit), err)
		}
		page.Limit = limit
	}
	return page, nil
}
