package utils

import (
	"strconv"
	"strings"
)

var priceReplacer = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "")

// ParsePrice converts a currency-prefixed price string like "$1,234.56" into
// a float. The second return value reports whether parsing succeeded; on
// failure the price is 0.0 so a bad record never has to abort a batch.
func ParsePrice(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(priceReplacer.Replace(raw))
	if cleaned == "" {
		return 0.0, false
	}
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price < 0 {
		return 0.0, false
	}
	return price, true
}
