package logging

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// field is a flattened attribute; group names are joined into the key with dots.
type field struct {
	key   string
	value slog.Value
}

func collectFields(dst []field, prefix string, attrs ...slog.Attr) []field {
	for _, attr := range attrs {
		if attr.Equal(slog.Attr{}) {
			continue
		}
		value := attr.Value.Resolve()
		key := attr.Key
		if prefix != "" {
			key = strings.TrimSuffix(prefix+"."+key, ".")
		}
		if value.Kind() == slog.KindGroup {
			dst = collectFields(dst, key, value.Group()...)
			continue
		}
		dst = append(dst, field{key: key, value: value})
	}
	return dst
}

// plainValue renders v without quoting, for header segments.
func plainValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindTime:
		return v.Time().Format(consoleTimeLayout)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprint(v.Any())
	default:
		return v.String()
	}
}

// quotedValue renders v for key=value pairs, quoting when it would not
// survive whitespace splitting.
func quotedValue(v slog.Value) string {
	s := plainValue(v)
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(s)
	}
	return s
}
