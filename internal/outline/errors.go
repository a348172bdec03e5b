package outline

import "errors"

// ErrNoRuns indicates a document with no extractable text runs after noise
// filtering. Callers recover locally by emitting a minimal outline (title
// from a configured fallback, empty heading list); the error is not fatal to
// a batch.
var ErrNoRuns = errors.New("document has no extractable text runs")
