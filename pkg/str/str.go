package str

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePositiveInt parse positive decimal string
func ParsePositiveInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err == nil && v <= 0 {
		err = fmt.Errorf("value expect positive, got %d", v)
	}
	return v, err
}

// ParseFloat parse decimal float string
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
