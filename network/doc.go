// Package network defines the Arc, Node, and Network types used throughout
// the assignment engine, along with the BPR congestion cost functions and
// the forward/reverse star bookkeeping built once at load time.
//
// A Network is an array-indexed directed graph: nodes and arcs are dense,
// 0-based slices rather than a map keyed by string ID, because the bush
// builder and MSA driver re-scan every arc on every iteration and cannot
// afford map indirection or lock acquisition in that loop (see §5 of
// SPEC_FULL.md). Zones occupy node indices 0..NumZones; nodes below
// FirstThroughNode are centroid connectors and may be endpoints but never
// intermediate nodes on a search.
//
// Construction proceeds in two phases: populate Nodes/Arcs/Demand directly,
// then call Finalize, which builds the star lists, computes each arc's
// FixedCost and BPR dispatch kind, and validates structural invariants
// (positive capacity, OD-pair reachability).
package network
