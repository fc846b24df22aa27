// Package extract runs the stem-isolation pipeline over a loaded module.
//
// A Session owns the playback engine exclusively for one run. For each
// enumerated voice it isolates the voice through mute commands, probes for
// audibility with the cheapest interpolation filter, and only then renders
// the stem at full quality into a fresh output sink. Mute state is restored
// unconditionally when the loop finishes, on every exit path.
//
// Per-stem failures produce Outcome values and never abort the loop; a run
// that writes zero stems is still a successful run.
package extract
