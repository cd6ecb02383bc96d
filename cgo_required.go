package main

import _ "runtime/cgo"

// The blank import fails the build early when CGO is disabled. The API binary
// itself talks to Postgres over lib/pq, but the sqlite-backed test suites need
// cgo, and a CGO_ENABLED=0 build would otherwise only break once tests run.
