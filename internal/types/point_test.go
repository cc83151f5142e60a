package types

import "testing"

func TestPoint_Valid(t *testing.T) {
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{Lat: 12.9716, Lng: 77.5946}, true},
		{Point{Lat: 90, Lng: 180}, true},
		{Point{Lat: -90, Lng: -180}, true},
		{Point{Lat: 90.0001, Lng: 0}, false},
		{Point{Lat: 0, Lng: -180.5}, false},
	}
	for _, tc := range cases {
		if got := tc.p.Valid(); got != tc.want {
			t.Errorf("Point%v.Valid() = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestMoney_String(t *testing.T) {
	m := Money{Amount: 265, Currency: DefaultCurrency}
	if got := m.String(); got != "265 INR" {
		t.Errorf("String() = %q, want %q", got, "265 INR")
	}
}
