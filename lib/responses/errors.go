package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var UnknownCategoryError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "unknown revenue category",
	HttpStatusCode: 400,
}

var SplitSumExceededError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "royalty split percentages exceed 100% for this release and category",
	HttpStatusCode: 400,
}

var ExpenseBalanceError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "expense correction would drive the recoupment balance below zero",
	HttpStatusCode: 400,
}

var LockContentionError = ErrorResponse{
	Error:          true,
	Code:           5,
	Message:        "the release is busy processing another earning. Please retry",
	HttpStatusCode: 409,
}

var NotFoundError = ErrorResponse{
	Error:          true,
	Code:           4,
	Message:        "not found",
	HttpStatusCode: 404,
}

// isErrAllowedForSentry keeps expected noise out of Sentry: failed admin
// token checks surface as 401s and are not exceptional.
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	return he.Code != http.StatusUnauthorized
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
			hub.CaptureException(err)
		})
	}
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		c.JSON(code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}
