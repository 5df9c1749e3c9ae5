package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/supplyroute/pkg/server"
)

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

// ErrRenderer render error dari service sesuai code-nya.
func ErrRenderer(err error) render.Renderer {
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return ErrInternalServerErrorRend(errors.New("internal server error"))
	}

	resp := &ErrResponse{
		Err:       err,
		AppCode:   int64(ierr.Code()),
		ErrorText: ierr.Message(),
	}
	switch ierr.Code() {
	case server.ErrNotFound:
		resp.HTTPStatusCode = http.StatusNotFound
		resp.StatusText = "Not found."
	case server.ErrBadParamInput:
		resp.HTTPStatusCode = http.StatusBadRequest
		resp.StatusText = "Invalid request."
	case server.ErrConflict:
		resp.HTTPStatusCode = http.StatusConflict
		resp.StatusText = "Conflict."
	default:
		resp.HTTPStatusCode = http.StatusInternalServerError
		resp.StatusText = "Internal server error."
		resp.ErrorText = "internal server error"
	}
	return resp
}

type requestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func newRequestValidator() *requestValidator {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return &requestValidator{validate: validate, trans: trans}
}

// check nil kalau valid, selain itu renderer error validasi.
func (v *requestValidator) check(data interface{}) render.Renderer {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}
	return ErrValidation(err, translateError(err, v.trans))
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf("%s", e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
