package handlers

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wonny/scout/backend/internal/contracts"
)

// QueryParams holds the query string of the dashboard endpoints
type QueryParams struct {
	Position    string `json:"position" validate:"omitempty,max=8,printascii"`
	Nationality string `json:"nationality" validate:"omitempty,max=64"`
	Age         string `json:"age" validate:"omitempty,age_filter"`
	Metric      string `json:"metric" validate:"omitempty,max=32"`
	Limit       int    `json:"limit" validate:"gte=0,lte=1000"`
}

// Criteria converts the params to filter criteria
func (p QueryParams) Criteria() contracts.FilterCriteria {
	return contracts.FilterCriteria{
		Position:    p.Position,
		Nationality: p.Nationality,
		Age:         p.Age,
	}
}

// MetricValue parses the metric; empty means the configured default
func (p QueryParams) MetricValue() (contracts.Metric, error) {
	if p.Metric == "" {
		return "", nil
	}
	return contracts.ParseMetric(p.Metric)
}

// ParamValidator validates QueryParams with struct tags
// ⭐ SSOT: 쿼리 파라미터 검증은 여기서만
type ParamValidator struct {
	validate *validator.Validate
}

// NewParamValidator creates a validator with the custom tags registered
func NewParamValidator() *ParamValidator {
	v := validator.New()

	// age: "All" 또는 0~99 정수
	_ = v.RegisterValidation("age_filter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if contracts.IsAll(s) {
			return true
		}
		age, err := strconv.Atoi(strings.TrimSpace(s))
		return err == nil && age >= 0 && age < 100
	})

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ParamValidator{validate: v}
}

// Parse reads and validates the query string
func (pv *ParamValidator) Parse(q url.Values) (QueryParams, error) {
	p := QueryParams{
		Position:    strings.TrimSpace(q.Get("position")),
		Nationality: strings.TrimSpace(q.Get("nationality")),
		Age:         strings.TrimSpace(q.Get("age")),
		Metric:      strings.TrimSpace(q.Get("metric")),
	}

	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return QueryParams{}, &contracts.ValidationError{Field: "limit", Message: "must be an integer"}
		}
		p.Limit = n
	}

	if err := pv.validate.Struct(p); err != nil {
		return QueryParams{}, toValidationError(err)
	}
	return p, nil
}

// toValidationError reports the first failing field
func toValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &contracts.ValidationError{Field: "query", Message: err.Error()}
	}

	fe := verrs[0]
	var msg string
	switch fe.Tag() {
	case "max":
		msg = fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		msg = fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		msg = fmt.Sprintf("must be <= %s", fe.Param())
	case "age_filter":
		msg = "must be an integer age or " + contracts.AllValue
	case "printascii":
		msg = "must be a position code"
	default:
		msg = fmt.Sprintf("failed %s validation", fe.Tag())
	}
	return &contracts.ValidationError{Field: fe.Field(), Message: msg}
}
