package models

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"marketplace/internal/common/apperr"
)

// ============================================================
// Mapping-to-struct Conversion
// ============================================================

// idKey допускается во входных объектах и игнорируется: id задаёт только путь.
const idKey = "id"

type fieldSet map[string]json.RawMessage

// parseObject разбирает JSON-объект и отклоняет ключи вне allowed.
func parseObject(data []byte, allowed []string) (fieldSet, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, apperr.New(apperr.InvalidInput, "body must be a JSON object")
	}

	var fields fieldSet
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, apperr.New(apperr.InvalidInput, "invalid json")
	}

	var unknown []string
	for key := range fields {
		if key == idKey || contains(allowed, key) {
			continue
		}
		unknown = append(unknown, key)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, apperr.Newf(apperr.InvalidInput, "unknown field(s): %s", strings.Join(unknown, ", "))
	}
	return fields, nil
}

func contains(list []string, key string) bool {
	for _, v := range list {
		if v == key {
			return true
		}
	}
	return false
}

func (f fieldSet) present(key string) bool {
	raw, ok := f[key]
	return ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func (f fieldSet) str(key string) (string, error) {
	if !f.present(key) {
		return "", missing(key)
	}
	var s string
	if err := json.Unmarshal(f[key], &s); err != nil {
		return "", apperr.Newf(apperr.InvalidInput, "field %q must be a string", key)
	}
	return s, nil
}

// integer принимает целые JSON-числа и числовые строки.
func (f fieldSet) integer(key string) (int64, error) {
	if !f.present(key) {
		return 0, missing(key)
	}
	return coerceInt(key, f[key])
}

// optionalInteger возвращает nil, если ключ отсутствует или равен null.
func (f fieldSet) optionalInteger(key string) (*int64, error) {
	if !f.present(key) {
		return nil, nil
	}
	v, err := coerceInt(key, f[key])
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (f fieldSet) date(key string) (Date, error) {
	s, err := f.str(key)
	if err != nil {
		return Date{}, err
	}
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, apperr.Newf(apperr.InvalidInput, "field %q: %v", key, err)
	}
	return d, nil
}

func coerceInt(key string, raw json.RawMessage) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if v, err := n.Int64(); err == nil {
			return v, nil
		}
		if fl, err := n.Float64(); err == nil && fl == math.Trunc(fl) && math.Abs(fl) < 1<<53 {
			return int64(fl), nil
		}
		return 0, apperr.Newf(apperr.InvalidInput, "field %q must be an integer", key)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return v, nil
		}
	}
	return 0, apperr.Newf(apperr.InvalidInput, "field %q must be an integer", key)
}

func missing(key string) error {
	return apperr.Newf(apperr.InvalidInput, "field %q is required", key)
}
