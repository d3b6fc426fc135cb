package validate

import (
	"strconv"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Helpers

func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MinLen(field, value string, min int) *ErrField {
	if len(value) < min {
		return &ErrField{Field: field, Msg: "must be at least " + strconv.Itoa(min) + " characters"}
	}
	return nil
}

// Price enforces the catalog price shape: at most 4 integer digits and at
// most 2 fraction digits (so |v| <= 9999.99). The digit check runs on the
// shortest decimal representation, which avoids float round-off artifacts.
func Price(field string, v float64) *ErrField {
	if v >= 10000 || v <= -10000 {
		return &ErrField{Field: field, Msg: "must have at most 4 integer digits"}
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > 2 {
		return &ErrField{Field: field, Msg: "must have at most 2 decimal places"}
	}
	return nil
}
