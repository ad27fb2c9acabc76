// Package world implements the chunk-streamed platformer world: deterministic
// chunk generation keyed by (seed, chunk index), a sliding window of loaded
// chunks around the player, per-tick entity simulation, and the
// collision/combat pipeline with respawn and full-reset semantics.
//
// The package is pure game logic. It never blocks, never returns errors and
// knows nothing about terminals; rendering goes through the Sink interface
// and input arrives as an Input value once per tick.
package world
