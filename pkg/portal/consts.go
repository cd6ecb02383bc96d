package portal

const DatesLayout = "2006-01-02 15:04:05"

// ---- Middleware / HTTP

const RequestIDHeader = "X-Request-ID"
const TimestampHeader = "X-Request-Timestamp"

// ---- Middleware / Context

type contextKey string

const SessionKey contextKey = "auth.session"
const RequestIdKey contextKey = "request.id"
