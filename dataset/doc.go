// Package dataset loads runtime measurements from a CSV table and splits them
// into one observation set per algorithm.
//
// The table must have a header row naming at least a problem-size column and
// one runtime column per algorithm:
//
//	problem_size,graph_solver_seconds,local_search_seconds
//	10,0.012,0.31
//	20,0.047,
//	40,0.190,1.22
//
// Each algorithm is cleaned independently: a row with a missing runtime for
// one algorithm is dropped from that algorithm's observations only. Missing
// cells are empty or hold one of the usual NA markers ("NA", "NaN", "null",
// "None" and friends).
//
// Files ending in .zst, .s2 or .lz4 are decompressed transparently.
package dataset
