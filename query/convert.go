package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Konsultn-Engineering/sqltpl/specifier"
)

// convert renders one argument for a placeholder of the given kind. skipped is
// true when the skip marker was consumed, directly or as a list element.
func (b *Builder) convert(v Value, kind specifier.Kind) (text string, skipped bool, err error) {
	if IsSkip(v) {
		return "", true, nil
	}

	if kind.IsList() {
		return b.convertList(v, kind == specifier.Identifier)
	}

	if !isScalar(v) {
		return "", false, fmt.Errorf("%w: %s for %s specifier", ErrInvalidArgumentType, typeName(v), kind)
	}

	switch kind {
	case specifier.Integer:
		return strconv.FormatInt(toInt(v), 10), false, nil
	case specifier.Float:
		text, err := formatFloat(toFloat(v))
		return text, false, err
	case specifier.Bare:
		text, err := b.renderBare(v, false)
		return text, false, err
	}

	return "", false, fmt.Errorf("%w: %s for %s specifier", ErrUnsupportedConversion, typeName(v), kind)
}

// convertList renders a list or associative array as a comma-joined fragment.
// Scalars are treated as one-element lists.
func (b *Builder) convertList(v Value, ident bool) (string, bool, error) {
	var (
		parts   []string
		skipped bool
	)

	renderElem := func(e Value) (string, error) {
		if IsSkip(e) {
			skipped = true
			return "", nil
		}
		if !isScalar(e) {
			return "", fmt.Errorf("%w: %s element", ErrInvalidArgumentType, typeName(e))
		}
		return b.renderBare(e, ident)
	}

	var items List
	switch x := v.(type) {
	case List:
		items = x
	case *Assoc:
		if !x.IsList() {
			parts = make([]string, 0, x.Len())
			err := x.each(func(key, value Value) error {
				k, err := b.renderBare(key, true)
				if err != nil {
					return err
				}
				val, err := renderElem(value)
				if err != nil {
					return err
				}
				parts = append(parts, k+" = "+val)
				return nil
			})
			if err != nil {
				return "", false, err
			}
			return strings.Join(parts, ", "), skipped, nil
		}
		items = x.Values()
	default:
		items = List{v}
	}

	parts = make([]string, 0, len(items))
	for _, e := range items {
		text, err := renderElem(e)
		if err != nil {
			return "", false, err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", "), skipped, nil
}

// renderBare renders a scalar as a literal. Strings are quoted as identifiers
// when ident is set.
func (b *Builder) renderBare(v Value, ident bool) (string, error) {
	switch x := v.(type) {
	case Null:
		return "NULL", nil
	case Bool:
		if x {
			return "1", nil
		}
		return "0", nil
	case Int:
		return strconv.FormatInt(int64(x), 10), nil
	case Float:
		return formatFloat(float64(x))
	case String:
		if ident {
			return b.dialect.QuoteIdentifier(string(x)), nil
		}
		return b.dialect.QuoteString(string(x)), nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidArgumentType, typeName(v))
}

func isScalar(v Value) bool {
	switch v.(type) {
	case Null, Bool, Int, Float, String:
		return true
	}
	return false
}

func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v has no SQL literal", ErrUnsupportedConversion, f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// toInt coerces a scalar the way a loosely typed cast would: booleans become
// 0 or 1, floats truncate toward zero and strings use their leading number.
func toInt(v Value) int64 {
	switch x := v.(type) {
	case Bool:
		if x {
			return 1
		}
		return 0
	case Int:
		return int64(x)
	case Float:
		return truncate(float64(x))
	case String:
		prefix, isFloat := numericPrefix(string(x))
		if prefix == "" {
			return 0
		}
		if !isFloat {
			n, err := strconv.ParseInt(prefix, 10, 64)
			if err == nil {
				return n
			}
		}
		f, _ := strconv.ParseFloat(prefix, 64)
		return truncate(f)
	}
	return 0
}

func toFloat(v Value) float64 {
	switch x := v.(type) {
	case Bool:
		if x {
			return 1
		}
		return 0
	case Int:
		return float64(x)
	case Float:
		return float64(x)
	case String:
		prefix, _ := numericPrefix(string(x))
		if prefix == "" {
			return 0
		}
		f, _ := strconv.ParseFloat(prefix, 64)
		return f
	}
	return 0
}

// truncate converts f to int64, saturating at the int64 bounds. NaN becomes 0.
func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// numericPrefix returns the leading decimal number of s after leading
// whitespace, and whether it has a fraction or exponent part.
func numericPrefix(s string) (string, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	isFloat := false
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
			isFloat = true
		}
	}
	if digits == 0 {
		return "", false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
			isFloat = true
		}
	}

	return s[:i], isFloat
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
