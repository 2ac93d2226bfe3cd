package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/sueflow/sueflow/dijkstra"
	"github.com/sueflow/sueflow/network"
)

// buildLine builds 0->1->2 with arc costs 2 and 3, plus a direct 0->2
// shortcut with cost 4, FirstThroughNode=0 (no centroid restriction).
func buildLine(t *testing.T) *network.Network {
	t.Helper()

	net, err := network.New(3, 3, 1, 0, 1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	net.Arcs[0] = network.Arc{Tail: 0, Head: 1, Capacity: 1, FreeFlowTime: 2, Alpha: 0.15, Beta: 4}
	net.Arcs[1] = network.Arc{Tail: 1, Head: 2, Capacity: 1, FreeFlowTime: 3, Alpha: 0.15, Beta: 4}
	net.Arcs[2] = network.Arc{Tail: 0, Head: 2, Capacity: 1, FreeFlowTime: 4, Alpha: 0.15, Beta: 4}
	if err := net.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	return net
}

func TestLabels_PicksShorterOfTwoPaths(t *testing.T) {
	net := buildLine(t)
	labels, err := dijkstra.Labels(net, 0)
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}

	if labels[0] != 0 {
		t.Fatalf("labels[origin] = %v, want 0", labels[0])
	}
	if labels[1] != 2 {
		t.Fatalf("labels[1] = %v, want 2", labels[1])
	}
	if labels[2] != 4 {
		t.Fatalf("labels[2] = %v, want 4 (shortcut beats 0->1->2 cost 5)", labels[2])
	}
}

func TestLabels_UnreachableNodeIsInfinite(t *testing.T) {
	net, err := network.New(3, 1, 3, 0, 1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	net.Arcs[0] = network.Arc{Tail: 0, Head: 1, Capacity: 1, FreeFlowTime: 1, Alpha: 0.15, Beta: 4}
	if err := net.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	labels, err := dijkstra.Labels(net, 0)
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}
	if !math.IsInf(labels[2], 1) {
		t.Fatalf("labels[2] = %v, want +Inf", labels[2])
	}
}

func TestLabels_RejectsOutOfRangeOrigin(t *testing.T) {
	net := buildLine(t)
	if _, err := dijkstra.Labels(net, 99); !errors.Is(err, dijkstra.ErrOriginOutOfRange) {
		t.Fatalf("Labels(99) error = %v, want ErrOriginOutOfRange", err)
	}
}

// buildCentroidChain: node 0 is the origin (a zone), node 1 is a centroid
// connector (zone, FirstThroughNode=2), nodes 2 and 3 are through nodes on
// the chain 0->1->2->3. The only path from 0 to nodes 2 and 3 passes
// through node 1, so they are reachable only if node 1 is expanded.
func buildCentroidChain(t *testing.T) *network.Network {
	t.Helper()

	net, err := network.New(4, 3, 2, 2, 1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	net.Arcs[0] = network.Arc{Tail: 0, Head: 1, Capacity: 1, FreeFlowTime: 1, Alpha: 0.15, Beta: 4}
	net.Arcs[1] = network.Arc{Tail: 1, Head: 2, Capacity: 1, FreeFlowTime: 1, Alpha: 0.15, Beta: 4}
	net.Arcs[2] = network.Arc{Tail: 2, Head: 3, Capacity: 1, FreeFlowTime: 1, Alpha: 0.15, Beta: 4}
	if err := net.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	return net
}

func TestLabels_NeverExpandsThroughACentroidConnector(t *testing.T) {
	net := buildCentroidChain(t)

	// From origin 0, node 1 (1 < FirstThroughNode=2) is labeled as an
	// endpoint but never expanded, so node 2 beyond it stays unreached.
	labels, err := dijkstra.Labels(net, 0)
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}
	if labels[1] != 1 {
		t.Fatalf("labels[1] = %v, want 1 (centroid labeled as an endpoint)", labels[1])
	}
	if !math.IsInf(labels[2], 1) {
		t.Fatalf("labels[2] = %v, want +Inf (path would transit centroid node 1)", labels[2])
	}
}
