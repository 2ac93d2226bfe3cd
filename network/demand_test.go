package network_test

import (
	"errors"
	"testing"

	"github.com/sueflow/sueflow/network"
)

func TestDemandMatrix_SetAndAt(t *testing.T) {
	m, err := network.NewDemandMatrix(3)
	if err != nil {
		t.Fatalf("NewDemandMatrix: %v", err)
	}
	if err := m.Set(0, 2, 7.5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := m.At(0, 2)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if got != 7.5 {
		t.Fatalf("At(0,2) = %v, want 7.5", got)
	}
}

func TestDemandMatrix_RejectsNegativeDemand(t *testing.T) {
	m, err := network.NewDemandMatrix(2)
	if err != nil {
		t.Fatalf("NewDemandMatrix: %v", err)
	}
	if err := m.Set(0, 1, -1); !errors.Is(err, network.ErrNegativeDemand) {
		t.Fatalf("Set(-1) error = %v, want ErrNegativeDemand", err)
	}
}

func TestDemandMatrix_RejectsOutOfBounds(t *testing.T) {
	m, err := network.NewDemandMatrix(2)
	if err != nil {
		t.Fatalf("NewDemandMatrix: %v", err)
	}
	if _, err := m.At(2, 0); !errors.Is(err, network.ErrIndexOutOfBounds) {
		t.Fatalf("At(2,0) error = %v, want ErrIndexOutOfBounds", err)
	}
}

func TestDemandMatrix_RowSum(t *testing.T) {
	m, err := network.NewDemandMatrix(3)
	if err != nil {
		t.Fatalf("NewDemandMatrix: %v", err)
	}
	for _, v := range []float64{1, 2, 3} {
		if err := m.Set(1, int(v)-1, v); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	sum, err := m.RowSum(1)
	if err != nil {
		t.Fatalf("RowSum: %v", err)
	}
	if sum != 6 {
		t.Fatalf("RowSum(1) = %v, want 6", sum)
	}
}

func TestNewDemandMatrix_RejectsNonPositiveDimensions(t *testing.T) {
	if _, err := network.NewDemandMatrix(0); !errors.Is(err, network.ErrInvalidDimensions) {
		t.Fatalf("NewDemandMatrix(0) error = %v, want ErrInvalidDimensions", err)
	}
}
