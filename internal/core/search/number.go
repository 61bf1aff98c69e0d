package search

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefix - самый длинный числовой префикс строки, как его читает parseFloat в браузере
var numberPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseNumber разбирает числовой критерий из строки.
// Пустая строка или строка без числового префикса дают nil ("без ограничения").
// "12abc" читается как 12, " 3.5 " как 3.5.
func ParseNumber(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	prefix := numberPrefix.FindString(s)
	if prefix == "" {
		return nil
	}

	value, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil
	}
	// при переполнении ParseFloat уже вернул ±Inf
	return &value
}
