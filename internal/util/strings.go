// Package util contains small string helpers.
package util

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// Ellipsis shortens s to at most maxLen runes, marking the cut with "...".
func Ellipsis(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(128)
		return sb
	},
}

// GetStringBuilder takes an empty builder from the pool.
func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

// FreeStringBuilder resets sb and returns it to the pool.
func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
