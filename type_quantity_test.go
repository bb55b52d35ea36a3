package recon

import "testing"

func TestQuantity_Normalization(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "integer stays integer", in: "100", want: "100"},
		{name: "integral decimal drops fraction", in: "100.0", want: "100"},
		{name: "fractional value keeps decimals", in: "175.75", want: "175.75"},
		{name: "zero", in: "0", want: "0"},
		{name: "integral zero fraction", in: "42.00", want: "42"},
		{name: "negative integral", in: "-15.0", want: "-15"},
		{name: "negative fractional", in: "-0.5", want: "-0.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := ParseQuantity(tc.in)
			if err != nil {
				t.Fatalf("ParseQuantity(%q) returned error: %v", tc.in, err)
			}
			if got := q.String(); got != tc.want {
				t.Errorf("ParseQuantity(%q).String() = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestQuantity_NormalizationIsIdempotent(t *testing.T) {
	// Formatting an already-integral value twice yields the same string,
	// including through arithmetic that reintroduces a fractional part.
	q := Q(100.0)
	first := q.String()
	again, err := ParseQuantity(first)
	if err != nil {
		t.Fatalf("ParseQuantity(%q) returned error: %v", first, err)
	}
	if second := again.String(); second != first {
		t.Errorf("normalization is not idempotent: %q then %q", first, second)
	}

	sum := Q(0.25).Add(Q(0.75))
	if got := sum.String(); got != "1" {
		t.Errorf("0.25+0.75 renders %q, want %q", got, "1")
	}
}

func TestQuantity_ParseError(t *testing.T) {
	if _, err := ParseQuantity("ten"); err == nil {
		t.Fatal("ParseQuantity(\"ten\") returned no error")
	}
}

func TestQuantity_Arithmetic(t *testing.T) {
	if got := Q(100).Sub(Q(30)); !got.Equal(Q(70)) {
		t.Errorf("100-30 = %s, want 70", got)
	}
	if got := Q(15).Neg(); !got.Equal(Q(-15)) {
		t.Errorf("Neg(15) = %s, want -15", got)
	}
	if !Q(0).IsZero() {
		t.Error("Q(0).IsZero() = false")
	}
}
