package mapping

import (
	"errors"
	"testing"
)

func TestBuildOrder_Order(t *testing.T) {
	order, err := buildOrder(3, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	exp := []int{2, 0, 1}
	if len(order) != len(exp) {
		t.Fatalf("expected %v, got %v", exp, order)
	}

	for i := range exp {
		if order[i] != exp[i] {
			t.Fatalf("expected %v, got %v", exp, order)
		}
	}
}

func TestBuildOrder_Cycle(t *testing.T) {
	_, err := buildOrder(3, func(i int) []int {
		switch i {
		case 0:
			return []int{1}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	if !errors.Is(err, errCycle) {
		t.Fatalf("expected errCycle, got %v", err)
	}

	var ce *cycleError
	if !errors.As(err, &ce) || len(ce.nodes) != 2 {
		t.Fatalf("expected two unordered nodes, got %v", err)
	}
}

func TestBuildOrder_OutOfRange(t *testing.T) {
	_, err := buildOrder(1, func(int) []int { return []int{3} })
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestBuildOrder_Empty(t *testing.T) {
	order, err := buildOrder(0, nil)
	if err != nil || order != nil {
		t.Fatalf("expected nil order, got %v, %v", order, err)
	}
}

func TestDependencyIndices(t *testing.T) {
	mf := &MappingFile{Mappers: []MapperDef{
		{Name: "A"},
		{Name: "B", Extends: "A", Imports: StringOrArray{"C", "Missing"}},
		{Name: "C"},
	}}

	deps := dependencyIndices(mf)(1)
	if len(deps) != 2 || deps[0] != 0 || deps[1] != 2 {
		t.Fatalf("expected [0 2], got %v", deps)
	}
}
