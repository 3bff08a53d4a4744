package fray

import "github.com/go-logr/logr"

// The engine logs through an injected logr.Logger so it never depends on
// the host application's logging stack. The zero value discards everything.
var internalLogger = logr.Logger{}

// SetInternalLogger routes engine diagnostics into the given logger,
// namespaced under "fray".
func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("fray")
}
