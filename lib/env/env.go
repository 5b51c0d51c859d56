package env

import (
	"os"
	"strconv"
)

func Test() bool {
	return os.Getenv("TEST_MODE") != ""
}

func Debug() bool {
	return os.Getenv("UMLKIT_DEBUG") != "" || os.Getenv("DEBUG") != ""
}

// FontSize returns UMLKIT_FONT_SIZE when it holds a positive integer.
func FontSize() (int, bool) {
	return positiveInt("UMLKIT_FONT_SIZE")
}

// Measurer returns UMLKIT_MEASURER, the name of the text measurer to use.
func Measurer() (string, bool) {
	s := os.Getenv("UMLKIT_MEASURER")
	return s, s != ""
}

// Cache reports the value of UMLKIT_CACHE when it is set to a boolean.
func Cache() (enabled bool, set bool) {
	s := os.Getenv("UMLKIT_CACHE")
	if s == "" {
		return false, false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return b, true
}

// Timeout returns UMLKIT_TIMEOUT, in seconds, when it holds a positive integer.
func Timeout() (int, bool) {
	return positiveInt("UMLKIT_TIMEOUT")
}

func positiveInt(key string) (int, bool) {
	if s := os.Getenv(key); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil && i > 0 {
			return int(i), true
		}
	}
	return -1, false
}
