// Package dijkstra computes single-origin shortest-cost labels over a
// network.Network using its current per-arc Cost.
//
// This is the free-flow / fixed-cost shortest path used once per origin
// during bush construction, not a general-purpose point-to-point query:
// it always labels every node reachable from the origin, and it enforces
// the same centroid-connector restriction the bush builder and the
// connectivity check observe — a node below Network.FirstThroughNode can
// have its label improved but is never expanded, so no computed path
// transits a centroid connector.
//
// The implementation follows the heap-based Dijkstra in the pack's graph
// library: a container/heap min-heap ordered by label, with a
// lazy-decrease-key discipline (push a fresh entry on improvement, skip
// stale pops against a visited set) rather than true decrease-key, to
// keep the heap element type itself immutable.
package dijkstra
