package utils

import (
	"math/rand"
	"strconv"
)

// GenerateOTPCode returns a 6-digit verification code, uniform in [100000, 999999].
func GenerateOTPCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
