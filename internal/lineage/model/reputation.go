package model

import (
	"fmt"
	"strings"
)

// Reputation is the verdict of the address reputation oracle.
type Reputation string

var (
	Trusted   Reputation = "trusted"
	Neutral   Reputation = "neutral"
	Untrusted Reputation = "untrusted"
)

// ParseReputation accepts both the verdict names and the WHITE/BLACK/NEUTRAL vocabulary used by list providers.
func ParseReputation(s string) (Reputation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trusted", "white", "whitelisted":
		return Trusted, nil
	case "untrusted", "black", "blacklisted":
		return Untrusted, nil
	case "neutral", "":
		return Neutral, nil
	default:
		return Neutral, fmt.Errorf("unknown reputation %q", s)
	}
}
