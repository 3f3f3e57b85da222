package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPrice renders a menu price the way the board shows it: whole
// amounts without decimals ("16"), anything else with two ("4.50").
func FormatPrice(price float64) string {
	if price == math.Trunc(price) {
		return strconv.Itoa(int(price))
	}
	return fmt.Sprintf("%.2f", price)
}
