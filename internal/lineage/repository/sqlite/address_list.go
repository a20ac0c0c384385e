package sqlite

import (
	"fmt"
	"strings"
)

// parseAddressList decodes the output address column. The ingester writes it as a list literal,
// either single-quoted ['a', 'b'] or JSON ["a","b"]; a bare value is a single address.
func parseAddressList(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "[") {
		return []string{s}, nil
	}
	if !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("unterminated address list %q", raw)
	}

	body := s[1 : len(s)-1]
	var addresses []string
	for i := 0; i < len(body); {
		switch c := body[i]; {
		case c == ' ' || c == ',' || c == '\t' || c == '\n':
			i++
		case c == '\'' || c == '"':
			end := strings.IndexByte(body[i+1:], c)
			if end < 0 {
				return nil, fmt.Errorf("unterminated address in %q", raw)
			}
			addresses = append(addresses, body[i+1:i+1+end])
			i += end + 2
		default:
			return nil, fmt.Errorf("unexpected %q in address list %q", c, raw)
		}
	}
	return addresses, nil
}

// receiver is the first listed address, or empty when the output pays no decodable address.
func receiver(raw string) (string, error) {
	addresses, err := parseAddressList(raw)
	if err != nil || len(addresses) == 0 {
		return "", err
	}
	return addresses[0], nil
}
