// Package adaptive implements the adaptive layer on top of SM-2 scheduling:
// an exponential forgetting-curve retention model, a per-word difficulty
// multiplier derived from answer latency and accuracy, interval adjustment,
// review priority, and the lifecycle of the per-word metadata value.
//
// Everything here is pure computation over values. No function returns an
// error; numeric edge cases resolve to defaults and clamps.
//
// Per review:
//
//	meta = adaptive.UpdateMetadata(meta, record, result, now)
//	days := adaptive.AdjustedInterval(sm2BaseInterval, meta)
package adaptive
