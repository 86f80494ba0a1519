package swiss

import "testing"

func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		in   string
		want ResultToken
	}{
		{"1-0", ResultWhiteWin},
		{"0-1", ResultBlackWin},
		{"0.5-0.5", ResultDraw},
		{"½-½", ResultDraw},
	}
	for _, c := range cases {
		got, err := NormalizeToken(c.in)
		if err != nil {
			t.Fatalf("NormalizeToken(%q): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTokenInvalid(t *testing.T) {
	_, err := NormalizeToken("2-0")
	if err == nil {
		t.Fatal("expected an error for an unrecognized token, got none")
	}
	if kind, ok := KindOf(err); !ok || kind != ErrInvalidResultToken {
		t.Errorf("expected ErrInvalidResultToken, got %v", err)
	}
}

func TestPoints(t *testing.T) {
	cases := []struct {
		token        ResultToken
		white, black Points1000
	}{
		{ResultWhiteWin, 1000, 0},
		{ResultBlackWin, 0, 1000},
		{ResultDraw, 500, 500},
	}
	for _, c := range cases {
		w, b, err := Points(c.token)
		if err != nil {
			t.Fatalf("Points(%q): unexpected error %v", c.token, err)
		}
		if w != c.white || b != c.black {
			t.Errorf("Points(%q) = (%d, %d), want (%d, %d)", c.token, w, b, c.white, c.black)
		}
	}
}

func TestFromFloatAndFloat64RoundTrip(t *testing.T) {
	if got := FromFloat(0.5); got != 500 {
		t.Errorf("FromFloat(0.5) = %d, want 500", got)
	}
	if got := FromFloat(1); got != 1000 {
		t.Errorf("FromFloat(1) = %d, want 1000", got)
	}
	if got := Points1000(500).Float64(); got != 0.5 {
		t.Errorf("Points1000(500).Float64() = %v, want 0.5", got)
	}
}
