package service

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"overcooked-chatbot/chat-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultQuantity is used when the intent carries no quantity at all.
const DefaultQuantity = 1

var one = decimal.NewFromInt(1)

// NormalizeForAdd accepts only whole, positive counts. Partial items cannot
// be added.
func NormalizeForAdd(raw any) (int, error) {
	if raw == nil {
		return DefaultQuantity, nil
	}
	n, ok := wholeNumber(raw)
	if !ok {
		return 0, &domain.QuantityError{Raw: raw, Reason: domain.QuantityNotWhole}
	}
	if n < 1 {
		return 0, &domain.QuantityError{Raw: raw, Reason: domain.QuantityBelowOne}
	}
	if n > domain.MaxQuantity {
		return 0, &domain.QuantityError{Raw: raw, Reason: domain.QuantityTooLarge}
	}
	return int(n), nil
}

// NormalizeForRemove also accepts a fraction strictly between 0 and 1, read as
// "that share of what is in the cart": floor(current * fraction), but never
// less than one item.
func NormalizeForRemove(raw any, current int) (int, error) {
	if raw == nil {
		return DefaultQuantity, nil
	}
	if fraction, ok := realNumber(raw); ok && fraction.IsPositive() && fraction.LessThan(one) {
		n := fraction.Mul(decimal.NewFromInt(int64(current))).Floor().IntPart()
		if n < 1 {
			n = 1
		}
		return int(n), nil
	}
	n, err := NormalizeForAdd(raw)
	var qe *domain.QuantityError
	if errors.As(err, &qe) && qe.Reason == domain.QuantityTooLarge {
		// more than any line can hold, so the whole line goes
		return domain.MaxQuantity, nil
	}
	return n, err
}

// wholeNumber parses raw as an int64. Out-of-range values saturate so the
// caller can tell "too large" apart from "not a number".
func wholeNumber(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return saturate(uint64(v)), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return saturate(v), true
	case float32:
		return wholeFloat(float64(v))
	case float64:
		return wholeFloat(v)
	case json.Number:
		if n, err := v.Int64(); err == nil || errors.Is(err, strconv.ErrRange) {
			return n, true
		}
		f, err := v.Float64()
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return wholeFloat(f)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func saturate(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

func wholeFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	case f <= math.MinInt64:
		return math.MinInt64, true
	}
	return int64(f), true
}

func realNumber(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(v), true
	case float32:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		return d, err == nil
	default:
		if n, ok := wholeNumber(raw); ok {
			return decimal.NewFromInt(n), true
		}
		return decimal.Zero, false
	}
}
