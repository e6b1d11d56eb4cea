package ir

import "testing"

func TestDense(t *testing.T) {
	tests := []struct {
		name     string
		entries  []KeyVal
		expected *Node
	}{
		{
			"out of order with gap",
			[]KeyVal{{"2", FromString("a")}, {"0", FromString("b")}},
			FromSlice([]*Node{FromString("b"), Null(), FromString("a")}),
		},
		{
			"non numeric keys dropped",
			[]KeyVal{{"x", FromString("a")}},
			Array(),
		},
		{
			"negative keys dropped",
			[]KeyVal{{"-1", FromString("a")}, {"0", FromString("b")}},
			FromSlice([]*Node{FromString("b")}),
		},
		{
			"mixed keys",
			[]KeyVal{{"1", FromInt(1)}, {"name", FromString("x")}, {"0", FromInt(0)}},
			FromSlice([]*Node{FromInt(0), FromInt(1)}),
		},
		{
			"empty object",
			nil,
			Array(),
		},
		{
			"dense run",
			[]KeyVal{{"0", FromString("x")}, {"1", FromString("y")}},
			FromSlice([]*Node{FromString("x"), FromString("y")}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dense(FromKeyVals(tt.entries))
			if !Equal(got, tt.expected) {
				t.Errorf("Dense() = %s, want %s",
					mustJSON(t, got), mustJSON(t, tt.expected))
			}
		})
	}
}

func mustJSON(t *testing.T, y *Node) string {
	t.Helper()
	d, err := y.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}
