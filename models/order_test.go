package models

import "testing"

func TestComputeOrderTotals(t *testing.T) {
	items := []OrderItem{
		{Price: 3.50, Quantity: 2},
		{Price: 10.00, Quantity: 1},
	}

	subtotal, count := ComputeOrderTotals(items)
	if subtotal != 17.00 {
		t.Errorf("expected subtotal 17.00, got %v", subtotal)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
}

func TestComputeOrderTotalsEmpty(t *testing.T) {
	subtotal, count := ComputeOrderTotals(nil)
	if subtotal != 0 || count != 0 {
		t.Errorf("expected zero totals, got %v and %d", subtotal, count)
	}
}

func TestComputeOrderTotalsZeroPrice(t *testing.T) {
	items := []OrderItem{{Price: 0, Quantity: 4}}

	subtotal, count := ComputeOrderTotals(items)
	if subtotal != 0 {
		t.Errorf("expected subtotal 0 for free items, got %v", subtotal)
	}
	if count != 4 {
		t.Errorf("expected count 4, got %d", count)
	}
}
