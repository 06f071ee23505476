// Package board implements the naval-combat game engine: the 10x10 cell grid,
// the fleet of placed ships, placement legality and shot resolution.
// It has no dependencies outside the standard library so the rules stay pure
// and testable; the platform layer only reads from it.
package board
