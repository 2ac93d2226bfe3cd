package tntp_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sueflow/sueflow/network"
	"github.com/sueflow/sueflow/tntp"
)

const validLinkFile = `<NUMBER OF ZONES> 2
<NUMBER OF NODES> 2
<NUMBER OF LINKS> 1
<FIRST THRU NODE> 1
<DISTANCE FACTOR> 0.0
<TOLL FACTOR> 0.0
<END OF METADATA>
1	2	100.0	1.0	1.0	0.15	4.0	0.0	0.0	1
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func TestReadNetwork_ValidFiles(t *testing.T) {
	dir := t.TempDir()
	linkPath := writeFile(t, dir, "net.tntp", validLinkFile)
	tripPath := writeFile(t, dir, "trips.tntp", `<NUMBER OF ZONES> 2
<TOTAL OD FLOW> 50
<END OF METADATA>
Origin 1
2 : 50.0;
`)

	net, err := tntp.ReadNetwork(linkPath, tripPath)
	if err != nil {
		t.Fatalf("ReadNetwork: %v", err)
	}
	if net.NumNodes() != 2 || net.NumArcs() != 1 || net.NumZones != 2 {
		t.Fatalf("unexpected network shape: nodes=%d arcs=%d zones=%d", net.NumNodes(), net.NumArcs(), net.NumZones)
	}
	if net.Arcs[0].Tail != 0 || net.Arcs[0].Head != 1 {
		t.Fatalf("arc endpoints = (%d,%d), want (0,1) after 1-based->0-based conversion", net.Arcs[0].Tail, net.Arcs[0].Head)
	}
	demand, err := net.Demand.At(0, 1)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if demand != 50 {
		t.Fatalf("demand[0][1] = %v, want 50", demand)
	}
}

// TestReadNetwork_NegativeDemandIsFatal is spec Scenario F: a trip file
// with negative demand must error out before MSA ever runs.
func TestReadNetwork_NegativeDemandIsFatal(t *testing.T) {
	dir := t.TempDir()
	linkPath := writeFile(t, dir, "net.tntp", validLinkFile)
	tripPath := writeFile(t, dir, "trips.tntp", `<NUMBER OF ZONES> 2
<END OF METADATA>
Origin 1
2 : -50.0;
`)

	_, err := tntp.ReadNetwork(linkPath, tripPath)
	if !errors.Is(err, network.ErrNegativeDemand) {
		t.Fatalf("ReadNetwork error = %v, want ErrNegativeDemand", err)
	}
}

func TestReadNetwork_MalformedLinkRowErrors(t *testing.T) {
	dir := t.TempDir()
	linkPath := writeFile(t, dir, "net.tntp", `<NUMBER OF ZONES> 2
<NUMBER OF NODES> 2
<NUMBER OF LINKS> 1
<END OF METADATA>
not a valid row
`)
	tripPath := writeFile(t, dir, "trips.tntp", `<NUMBER OF ZONES> 2
<END OF METADATA>
`)

	_, err := tntp.ReadNetwork(linkPath, tripPath)
	if !errors.Is(err, tntp.ErrMalformedLinkRow) {
		t.Fatalf("ReadNetwork error = %v, want ErrMalformedLinkRow", err)
	}
}

func TestReadNetwork_ZoneCountMismatchErrors(t *testing.T) {
	dir := t.TempDir()
	linkPath := writeFile(t, dir, "net.tntp", validLinkFile)
	tripPath := writeFile(t, dir, "trips.tntp", `<NUMBER OF ZONES> 3
<END OF METADATA>
`)

	_, err := tntp.ReadNetwork(linkPath, tripPath)
	if !errors.Is(err, tntp.ErrZoneCountMismatch) {
		t.Fatalf("ReadNetwork error = %v, want ErrZoneCountMismatch", err)
	}
}
