package reader

import "strconv"

func parseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
