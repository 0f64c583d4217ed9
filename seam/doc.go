// Package seam finds and removes minimum-energy seams.
//
// A vertical seam is one column index per row, top to bottom, where
// consecutive entries differ by at most one. Finding the cheapest seam is a
// shortest path on the DAG whose vertices are pixels and whose edges go from
// (x', y-1) to (x, y) for |x - x'| ≤ 1; it is solved row by row with dynamic
// programming.
//
// Algorithm Outline:
//  1. dist[0][x] = e(x,0); pred[0][x] = x.
//  2. For y = 1..H-1 and every x, take the cheapest of dist[y-1][x],
//     dist[y-1][x-1], dist[y-1][x+1] (clipped at the side edges, never
//     wrapped) and add e(x,y). Candidates are tried straight, then left,
//     then right, and only a strictly smaller distance replaces the current
//     best, so ties favour straight over left over right.
//  3. The seam ends at the column with the smallest dist[H-1][x], lowest
//     column on ties.
//  4. Walk the predecessor table from the end back up to row 0.
//
// Horizontal seams are vertical seams of the transposed picture; this
// package only implements the vertical case.
//
// Complexity:
//
//	FindVertical:   O(W·H) time, O(W·H) memory for distance and predecessor tables.
//	RemoveVertical: O(W·H) time and memory for the new grid.
//
// Errors:
//
//	ErrInvalidSeam – wrong length, out-of-range entry, a step larger than one,
//	                 or removal from a picture whose width is already 1.
package seam
