// Package voices enumerates the isolatable sound sources of a loaded module.
//
// Tracker formats disagree about what the isolation unit is: XM/IT carry
// instruments, MOD/S3M carry samples, and some files expose neither count
// reliably. Enumeration walks an ordered resolver chain and the first
// applicable tier wins:
//
//  1. nonzero instrument count
//  2. nonzero sample count
//  3. legacy MOD-family heuristic (fixed 31 sample slots)
//  4. pattern channel count
//
// Name lists are best-effort; a missing or short list is never an error.
package voices
