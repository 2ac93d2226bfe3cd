package network

import "fmt"

// DemandMatrix is a dense, row-major numZones x numZones matrix of OD
// demand values, grounded on lvlath's matrix.Dense: a flat backing slice
// indexed by row*cols+col rather than a slice-of-slices, so a full pass
// over all OD pairs (as in the target aggregator) touches one contiguous
// allocation.
type DemandMatrix struct {
	zones int
	data  []float64
}

// NewDemandMatrix allocates a zones x zones matrix initialized to zero.
func NewDemandMatrix(zones int) (*DemandMatrix, error) {
	if zones <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &DemandMatrix{zones: zones, data: make([]float64, zones*zones)}, nil
}

// Zones returns the number of zones (both dimensions of the matrix).
func (m *DemandMatrix) Zones() int { return m.zones }

func (m *DemandMatrix) indexOf(origin, dest int) (int, error) {
	if origin < 0 || origin >= m.zones || dest < 0 || dest >= m.zones {
		return 0, fmt.Errorf("DemandMatrix(%d,%d): %w", origin, dest, ErrIndexOutOfBounds)
	}

	return origin*m.zones + dest, nil
}

// At returns demand[origin][dest].
func (m *DemandMatrix) At(origin, dest int) (float64, error) {
	idx, err := m.indexOf(origin, dest)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns demand[origin][dest] = v. Negative demand is rejected.
func (m *DemandMatrix) Set(origin, dest int, v float64) error {
	if v < 0 {
		return fmt.Errorf("DemandMatrix(%d,%d)=%g: %w", origin, dest, v, ErrNegativeDemand)
	}
	idx, err := m.indexOf(origin, dest)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RowSum returns the total demand originating at zone r (used by Finalize
// to skip origins without demand and to report TotalODFlow).
func (m *DemandMatrix) RowSum(origin int) (float64, error) {
	if origin < 0 || origin >= m.zones {
		return 0, fmt.Errorf("DemandMatrix.RowSum(%d): %w", origin, ErrIndexOutOfBounds)
	}

	var total float64
	row := m.data[origin*m.zones : origin*m.zones+m.zones]
	for _, v := range row {
		total += v
	}

	return total, nil
}
