package http

import (
	"errors"
	"net/http"
	"strconv"

	libErr "github.com/LerianStudio/lib-auth-go/error"
	"github.com/LerianStudio/lib-auth-go/pkg"
	commonsHttp "github.com/LerianStudio/lib-commons/commons/net/http"
	"github.com/gofiber/fiber/v2"
)

// WithError renders an auth client error as a fiber response. Upstream API
// errors keep their 4xx status where a matching response exists.
func WithError(c *fiber.Ctx, err error) error {
	var apiErr *libErr.ApiError
	if errors.As(err, &apiErr) {
		return withAPIError(c, apiErr)
	}

	var vErr pkg.ValidationError
	if errors.As(err, &vErr) {
		return commonsHttp.BadRequest(c, vErr)
	}

	var iErr pkg.InternalServerError
	_ = errors.As(pkg.ValidateInternalError(err, ""), &iErr)

	return commonsHttp.InternalServerError(c, iErr.Code, iErr.Title, iErr.Message)
}

func withAPIError(c *fiber.Ctx, e *libErr.ApiError) error {
	code := e.Code
	if code == "" {
		code = strconv.Itoa(e.StatusCode)
	}

	title := http.StatusText(e.StatusCode)

	switch e.StatusCode {
	case http.StatusBadRequest:
		return commonsHttp.BadRequest(c, pkg.ValidationError{Code: code, Title: title, Message: e.Msg})
	case http.StatusUnauthorized:
		return commonsHttp.Unauthorized(c, code, title, e.Msg)
	case http.StatusForbidden:
		return commonsHttp.Forbidden(c, code, title, e.Msg)
	case http.StatusNotFound:
		return commonsHttp.NotFound(c, code, title, e.Msg)
	case http.StatusConflict:
		return commonsHttp.Conflict(c, code, title, e.Msg)
	case http.StatusUnprocessableEntity:
		return commonsHttp.UnprocessableEntity(c, code, title, e.Msg)
	default:
		var iErr pkg.InternalServerError
		_ = errors.As(pkg.ValidateInternalError(e, ""), &iErr)

		return commonsHttp.InternalServerError(c, iErr.Code, iErr.Title, iErr.Message)
	}
}
