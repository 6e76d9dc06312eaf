package usecase

import "time"

// Log prefixes
const (
	LogPrefixChat  = "internal.chat.usecase.Chat"
	LogPrefixReset = "internal.chat.usecase.Reset"
)

// Generation defaults, used when Config leaves a field zero.
const (
	DefaultTemperature     = 0.7
	DefaultMaxOutputTokens = 2000
	DefaultHistoryWindow   = 6
	DefaultTimeout         = 60 * time.Second
)

// Image limits
const (
	MaxImageBytes = 10 << 20
	dataURLPrefix = "data:"
	base64Marker  = ";base64,"
)
