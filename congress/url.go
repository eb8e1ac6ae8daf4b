package congress

import (
	"fmt"
	"strings"
)

// billTypePaths maps Congress.gov API bill types to URL path segments.
var billTypePaths = map[string]string{
	"HR":      "house-bill",
	"S":       "senate-bill",
	"HJRES":   "house-joint-resolution",
	"SJRES":   "senate-joint-resolution",
	"HCONRES": "house-concurrent-resolution",
	"SCONRES": "senate-concurrent-resolution",
	"HRES":    "house-resolution",
	"SRES":    "senate-resolution",
}

// BillURL builds the public Congress.gov page for a bill.
func BillURL(congress int, billType, number string) string {
	if billType == "" || number == "" {
		return "https://www.congress.gov"
	}

	path, ok := billTypePaths[strings.ToUpper(billType)]
	if !ok {
		path = "bill"
	}
	return fmt.Sprintf("https://www.congress.gov/bill/%dth-congress/%s/%s", congress, path, number)
}
