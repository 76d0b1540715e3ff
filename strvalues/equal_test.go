package strvalues_test

import (
	"testing"

	"github.com/hasbyte1/go-dotnet-utils/strvalues"
)

// ─────────────────────────────────────────────────────────────────────────────
// Equal
// ─────────────────────────────────────────────────────────────────────────────

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b strvalues.Values
		want bool
	}{
		{"both empty", strvalues.Empty(), strvalues.Empty(), true},
		{"empty vs single empty string", strvalues.Empty(), strvalues.New(""), false},
		{"single vs same single", strvalues.New("x"), strvalues.New("x"), true},
		{"single vs one-element slice", strvalues.New("x"), strvalues.From([]string{"x"}), true},
		{"single vs different", strvalues.New("x"), strvalues.New("y"), false},
		{"many equal", strvalues.From([]string{"a", "b"}), strvalues.From([]string{"a", "b"}), true},
		{"many order-sensitive", strvalues.From([]string{"a", "b"}), strvalues.From([]string{"b", "a"}), false},
		{"count mismatch", strvalues.From([]string{"a"}), strvalues.From([]string{"a", "b"}), false},
		{"case-sensitive", strvalues.New("A"), strvalues.New("a"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := strvalues.Equal(tc.a, tc.b); got != tc.want {
				t.Fatalf("Equal = %v; want %v", got, tc.want)
			}
			// Symmetry.
			if got := strvalues.Equal(tc.b, tc.a); got != tc.want {
				t.Fatalf("Equal reversed = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestEqualReflexive(t *testing.T) {
	for _, v := range []strvalues.Values{
		strvalues.Empty(),
		strvalues.New("x"),
		strvalues.From([]string{"a", "b", "c"}),
	} {
		if !v.Equal(v) {
			t.Fatalf("%v should equal itself", v)
		}
	}
}

func TestEqualScalar(t *testing.T) {
	if !strvalues.EqualScalar(strvalues.New("x"), "x") {
		t.Fatal("single should equal its scalar")
	}
	if !strvalues.EqualScalar(strvalues.From([]string{"x"}), "x") {
		t.Fatal("one-element slice form should equal the bare scalar")
	}
	if strvalues.EqualScalar(strvalues.Empty(), "") {
		t.Fatal("empty container should not equal any scalar")
	}
	if strvalues.EqualScalar(strvalues.From([]string{"a", "b"}), "a,b") {
		t.Fatal("multi-element container should not equal its joined form")
	}
}

func TestEqualSlice(t *testing.T) {
	if !strvalues.EqualSlice(strvalues.From([]string{"a", "b"}), []string{"a", "b"}) {
		t.Fatal("slice form should equal the bare slice")
	}
	if !strvalues.EqualSlice(strvalues.New("a"), []string{"a"}) {
		t.Fatal("single should equal a one-element bare slice")
	}
	if !strvalues.EqualSlice(strvalues.Empty(), nil) {
		t.Fatal("empty should equal a nil slice")
	}
	if strvalues.EqualSlice(strvalues.New("a"), nil) {
		t.Fatal("single should not equal a nil slice")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Hash
// ─────────────────────────────────────────────────────────────────────────────

func TestHashAgreesWithEqual(t *testing.T) {
	pairs := [][2]strvalues.Values{
		{strvalues.Empty(), strvalues.From([]string{})},
		{strvalues.New("x"), strvalues.From([]string{"x"})},
		{strvalues.From([]string{"a", "b"}), strvalues.Concat(strvalues.New("a"), strvalues.New("b"))},
	}
	for _, p := range pairs {
		if !strvalues.Equal(p[0], p[1]) {
			t.Fatalf("%v and %v should be equal", p[0], p[1])
		}
		if p[0].Hash() != p[1].Hash() {
			t.Fatalf("equal containers %v and %v hash differently", p[0], p[1])
		}
	}
}

func TestHashBoundarySensitive(t *testing.T) {
	// ["ab"] and ["a","b"] must not collapse to the same element stream.
	a := strvalues.New("ab")
	b := strvalues.From([]string{"a", "b"})
	if a.Hash() == b.Hash() {
		t.Fatal(`["ab"] and ["a","b"] should hash differently`)
	}
}

func TestHashOrderSensitive(t *testing.T) {
	a := strvalues.From([]string{"a", "b"})
	b := strvalues.From([]string{"b", "a"})
	if a.Hash() == b.Hash() {
		t.Fatal("hash should be order-sensitive")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// IsNullOrEmpty
// ─────────────────────────────────────────────────────────────────────────────

func TestIsNullOrEmpty(t *testing.T) {
	cases := []struct {
		name string
		v    strvalues.Values
		want bool
	}{
		{"empty", strvalues.Empty(), true},
		{"zero-element slice form", strvalues.From([]string{}), true},
		{"single empty string", strvalues.New(""), true},
		{"one-element slice of empty string", strvalues.From([]string{""}), true},
		{"single value", strvalues.New("x"), false},
		{"two empty strings", strvalues.From([]string{"", ""}), false},
		{"many values", strvalues.From([]string{"a", "b"}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := strvalues.IsNullOrEmpty(tc.v); got != tc.want {
				t.Fatalf("IsNullOrEmpty = %v; want %v", got, tc.want)
			}
		})
	}
}
