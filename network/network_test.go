package network_test

import (
	"errors"
	"testing"

	"github.com/sueflow/sueflow/network"
)

// buildTwoNode returns a 2-node, 1-arc, 2-zone network: zone 0 -> zone 1
// directly connected by a single arc with capacity 10 and free-flow time 1.
func buildTwoNode(t *testing.T) *network.Network {
	t.Helper()

	net, err := network.New(2, 1, 2, 0, 1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	net.Arcs[0] = network.Arc{
		Tail: 0, Head: 1,
		Capacity: 10, FreeFlowTime: 1, Alpha: 0.15, Beta: 4,
	}
	if err := net.Demand.Set(0, 1, 5); err != nil {
		t.Fatalf("Set demand: %v", err)
	}

	return net
}

func TestFinalize_BuildsStarsAndCosts(t *testing.T) {
	net := buildTwoNode(t)
	if err := net.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if got := net.Nodes[0].ForwardStar; len(got) != 1 || got[0] != 0 {
		t.Fatalf("ForwardStar[0] = %v, want [0]", got)
	}
	if got := net.Nodes[1].ReverseStar; len(got) != 1 || got[0] != 0 {
		t.Fatalf("ReverseStar[1] = %v, want [0]", got)
	}
	if net.Arcs[0].Cost != net.Arcs[0].FreeFlowTime+net.Arcs[0].FixedCost {
		t.Fatalf("initial Cost = %v, want free-flow cost", net.Arcs[0].Cost)
	}
	if net.TotalODFlow != 5 {
		t.Fatalf("TotalODFlow = %v, want 5", net.TotalODFlow)
	}
}

func TestFinalize_RejectsNonPositiveCapacity(t *testing.T) {
	net := buildTwoNode(t)
	net.Arcs[0].Capacity = 0
	if err := net.Finalize(); !errors.Is(err, network.ErrNonPositiveCapacity) {
		t.Fatalf("Finalize error = %v, want ErrNonPositiveCapacity", err)
	}
}

func TestFinalize_RejectsOutOfRangeEndpoint(t *testing.T) {
	net := buildTwoNode(t)
	net.Arcs[0].Head = 5
	if err := net.Finalize(); !errors.Is(err, network.ErrArcNodeOutOfRange) {
		t.Fatalf("Finalize error = %v, want ErrArcNodeOutOfRange", err)
	}
}

func TestFinalize_RejectsUnreachableDestination(t *testing.T) {
	net, err := network.New(2, 0, 2, 0, 1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := net.Demand.Set(0, 1, 1); err != nil {
		t.Fatalf("Set demand: %v", err)
	}
	if err := net.Finalize(); !errors.Is(err, network.ErrUnreachableDestination) {
		t.Fatalf("Finalize error = %v, want ErrUnreachableDestination", err)
	}
}

func TestUpdateLinkCosts_QuarticIncreasesWithFlow(t *testing.T) {
	net := buildTwoNode(t)
	if err := net.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	free := net.Arcs[0].Cost
	net.Arcs[0].Flow = 10 // flow == capacity
	net.UpdateLinkCosts()
	if net.Arcs[0].Cost <= free {
		t.Fatalf("Cost at flow=capacity = %v, want > free-flow cost %v", net.Arcs[0].Cost, free)
	}
}

func TestUpdateLinkCosts_NonPositiveFlowGuardsToFreeFlow(t *testing.T) {
	net := buildTwoNode(t)
	if err := net.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	net.Arcs[0].Flow = -1
	net.UpdateLinkCosts()
	want := net.Arcs[0].FreeFlowTime + net.Arcs[0].FixedCost
	if net.Arcs[0].Cost != want {
		t.Fatalf("Cost at negative flow = %v, want %v", net.Arcs[0].Cost, want)
	}
}

func TestUpdateLinkCosts_LinearBranch(t *testing.T) {
	net := buildTwoNode(t)
	net.Arcs[0].Beta = 1
	if err := net.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	net.Arcs[0].Flow = 5
	net.UpdateLinkCosts()
	want := net.Arcs[0].FixedCost + net.Arcs[0].FreeFlowTime*(1+net.Arcs[0].Alpha*0.5)
	if diff := net.Arcs[0].Cost - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("linear Cost = %v, want %v", net.Arcs[0].Cost, want)
	}
}
