// Package diagnostic collects per-type generation problems so a host can
// report every offending model type of a run instead of stopping at the
// first one.
package diagnostic
