package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"

	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)
