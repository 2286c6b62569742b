package tally

import "testing"

func TestValueStringRendering(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{NewInt(8), "8"},
		{NewInt(0), "0"},
		{NewFloat(4), "4"},
		{NewFloat(3.5), "3.5"},
		{NewFloat(1.0 / 3.0), "0.3333333333333333"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestValueEqualDistinguishesKinds(t *testing.T) {
	if NewInt(4).Equal(NewFloat(4)) {
		t.Fatalf("int 4 and float 4 should not be equal values")
	}
	if !NewFloat(4).Equal(NewFloat(4)) {
		t.Fatalf("identical floats should be equal")
	}
}
