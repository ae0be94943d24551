package store

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// textArray maps a Postgres text[] column onto []string through the
// database/sql interfaces. Elements are always written quoted, with
// backslash escapes for quotes and backslashes, and Scan parses the same
// grammar back.
type textArray []string

func (a textArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}

	elems := make([]string, len(a))
	for i, s := range a {
		escaped := strings.ReplaceAll(s, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		elems[i] = `"` + escaped + `"`
	}

	return "{" + strings.Join(elems, ",") + "}", nil
}

func (a *textArray) Scan(src any) error {
	var raw string

	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into textArray", src)
	}

	raw = strings.TrimPrefix(raw, "{")
	raw = strings.TrimSuffix(raw, "}")

	if raw == "" {
		*a = []string{}
		return nil
	}

	out, err := parseArrayElements(raw)
	if err != nil {
		return err
	}

	*a = out

	return nil
}

// parseArrayElements walks the comma-separated element list, honoring
// quoted elements with backslash escapes so commas and quotes inside an
// element survive the round trip.
func parseArrayElements(raw string) ([]string, error) {
	var (
		out  []string
		elem strings.Builder
	)

	inQuotes := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		switch {
		case inQuotes && c == '\\':
			if i+1 >= len(raw) {
				return nil, fmt.Errorf("malformed text[] literal: trailing backslash")
			}

			i++
			elem.WriteByte(raw[i])
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			out = append(out, elem.String())
			elem.Reset()
		default:
			elem.WriteByte(c)
		}
	}

	if inQuotes {
		return nil, fmt.Errorf("malformed text[] literal: unterminated quote")
	}

	out = append(out, elem.String())

	return out, nil
}
