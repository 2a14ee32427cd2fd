// Package respond holds the JSON plumbing shared by the API handlers: request
// decoding and validation, and mapping domain errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
	"github.com/MrJamesThe3rd/stockroom/internal/refnum"
	"github.com/MrJamesThe3rd/stockroom/internal/stockcount"
	"github.com/MrJamesThe3rd/stockroom/internal/uom"
)

var validate = validator.New()

func init() {
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		d, ok := v.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}

		f, _ := d.Float64()

		return f
	}, decimal.Decimal{})

	_ = validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})
}

type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// ValidationError is returned by Decode when the body is well-formed JSON but
// fails struct validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

type errorBody struct {
	Error     string         `json:"error"`
	Fields    []FieldError   `json:"fields,omitempty"`
	Shortages []shortageBody `json:"shortages,omitempty"`
}

type shortageBody struct {
	ItemID    uuid.UUID       `json:"item_id"`
	ItemCode  string          `json:"item_code"`
	Requested decimal.Decimal `json:"requested"`
	Available decimal.Decimal `json:"available"`
	Shortage  decimal.Decimal `json:"shortage"`
}

// Decode reads a JSON body into v and validates it.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ValidationError{Fields: []FieldError{{Field: "body", Tag: "json", Param: err.Error()}}}
	}

	return check(v)
}

// DecodeOptional is Decode for endpoints whose body may be omitted. An empty
// body leaves v untouched.
func DecodeOptional(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		return &ValidationError{Fields: []FieldError{{Field: "body", Tag: "json", Param: err.Error()}}}
	}

	return check(v)
}

func check(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}

		out := &ValidationError{}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{Field: fe.Namespace(), Tag: fe.Tag(), Param: fe.Param()})
		}

		return out
	}

	return nil
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	var verr *ValidationError

	switch {
	case errors.As(err, &verr),
		errors.Is(err, ledger.ErrInvalidLine),
		errors.Is(err, stockcount.ErrInvalidCount),
		errors.Is(err, uom.ErrInvalidFactor),
		errors.Is(err, uom.ErrInvalidUnit),
		errors.Is(err, refnum.ErrMalformed),
		errors.Is(err, refnum.ErrUnknownType):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound),
		errors.Is(err, stockcount.ErrNotFound),
		errors.Is(err, uom.ErrUnknownItem):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrDuplicateReference):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrPersistence):
		return http.StatusInternalServerError
	case errors.Is(err, ledger.ErrInsufficientStock),
		errors.Is(err, ledger.ErrBackorderClosed),
		errors.Is(err, stockcount.ErrDuplicatePeriod),
		errors.Is(err, stockcount.ErrNoItems),
		errors.Is(err, stockcount.ErrCountClosed),
		errors.Is(err, stockcount.ErrUncountedLines),
		errors.Is(err, stockcount.ErrInvalidTransition),
		errors.Is(err, stockcount.ErrNotCompleted),
		errors.Is(err, stockcount.ErrNothingToResolve),
		errors.Is(err, uom.ErrNoConversion):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// Error writes err as a JSON error body. Server errors are logged and their
// message is not exposed.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	body := errorBody{Error: err.Error()}

	var verr *ValidationError
	if errors.As(err, &verr) {
		body.Fields = verr.Fields
	}

	var short *ledger.InsufficientStockError
	if errors.As(err, &short) {
		for _, s := range short.Shortages {
			body.Shortages = append(body.Shortages, shortageBody{
				ItemID:    s.ItemID,
				ItemCode:  s.ItemCode,
				Requested: s.Requested,
				Available: s.Available,
				Shortage:  s.Shortage,
			})
		}
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)

		body = errorBody{Error: http.StatusText(status)}
	}

	JSON(w, status, body)
}
