package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	supportedRegions = []string{
		"BR",
	}
)

// NormalizePhone converts a phone number to E.164. WhatsApp identifiers
// arrive as bare digits ("5511987654321"), so a missing "+" prefix is
// tolerated. Numbers that cannot be parsed as valid return "".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	candidates := []string{phone}
	if !strings.HasPrefix(phone, "+") {
		candidates = append(candidates, "+"+phone)
	}

	for _, candidate := range candidates {
		for _, region := range supportedRegions {
			parsedNumber, err := phonenumbers.Parse(candidate, region)
			if err != nil || !phonenumbers.IsValidNumber(parsedNumber) {
				continue
			}
			return phonenumbers.Format(parsedNumber, phonenumbers.E164)
		}
	}
	return ""
}
