package validate

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func tenRows() string {
	rows := make([]string, 10)
	for i := range rows {
		if i%2 == 0 {
			rows[i] = "1111111111"
		} else {
			rows[i] = "0000000000"
		}
	}
	return strings.Join(rows, "#")
}

func TestConfigAcceptsMinimalValid(t *testing.T) {
	if err := Config(10, 10, 0, 250, tenRows()); err != nil {
		t.Fatalf("Config rejected a valid configuration: %v", err)
	}
	if err := Config(80, 40, 100, 1000, "1"); err != nil {
		t.Fatalf("Config rejected a valid configuration: %v", err)
	}
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"width 15", Width(15), ErrWidth},
		{"width 0", Width(0), ErrWidth},
		{"height 15", Height(15), ErrHeight},
		{"height 80", Height(80), ErrHeight},
		{"speed 100", Speed(100), ErrSpeed},
		{"speed 249", Speed(249), ErrSpeed},
		{"speed 1500", Speed(1500), ErrSpeed},
		{"generations -1", Generations(-1), ErrGenerations},
		{"row too long", Population("11111111111#1", 10, 10), ErrPopulationColumns},
		{"too many rows", Population("1#1#1#1#1#1#1#1#1#1#1", 10, 10), ErrPopulationRows},
		{"bad symbol", Population("12#1", 10, 10), ErrPopulationSymbols},
		{"letters", Population("ABC", 10, 10), ErrPopulationSymbols},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil {
				t.Fatal("expected rejection")
			}
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("error = %v, want %v", tc.err, tc.want)
			}
		})
	}
}

func TestPredicatesAccept(t *testing.T) {
	for _, w := range ValidWidths {
		if err := Width(w); err != nil {
			t.Errorf("Width(%d) = %v", w, err)
		}
	}
	for _, h := range ValidHeights {
		if err := Height(h); err != nil {
			t.Errorf("Height(%d) = %v", h, err)
		}
	}
	for _, s := range []int{250, 600, 1000} {
		if err := Speed(s); err != nil {
			t.Errorf("Speed(%d) = %v", s, err)
		}
	}
	if err := Generations(0); err != nil {
		t.Errorf("Generations(0) = %v", err)
	}
	for _, p := range []string{"", "#", "#####11111#1#1", "1111111111"} {
		if err := Population(p, 10, 10); err != nil {
			t.Errorf("Population(%q) = %v", p, err)
		}
	}
}

func TestConfigReportsFirstFailure(t *testing.T) {
	cases := []struct {
		name       string
		w, h, g, s int
		population string
		want       error
	}{
		{"width before everything", 15, 15, -1, 100, "2", ErrWidth},
		{"height before generations", 10, 15, -1, 100, "2", ErrHeight},
		{"generations before speed", 10, 10, -1, 100, "2", ErrGenerations},
		{"speed before population", 10, 10, 0, 100, "2", ErrSpeed},
		{"population last", 10, 10, 0, 250, "2", ErrPopulationSymbols},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Config(tc.w, tc.h, tc.g, tc.s, tc.population)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Config error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestErrorMessageNamesValue(t *testing.T) {
	err := Width(15)
	if !strings.Contains(err.Error(), "15 given") {
		t.Fatalf("width error %q does not mention the given value", err)
	}
}

func TestErrorMessagesAreClean(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{Height(15), "the height value has to be 10, 20 or 40, but 15 given"},
		{Speed(100), "the speed value has to be between 250 and 1000, but 100 given"},
		{Population("1#1#1", 10, 2), "invalid population, it has more rows than the grid height, 3 rows for height 2"},
	}
	for _, tc := range cases {
		if tc.err.Error() != tc.want {
			t.Errorf("error = %q, want %q", tc.err, tc.want)
		}
		if errors.Cause(tc.err) == tc.err {
			t.Errorf("Cause(%v) should reach the sentinel", tc.err)
		}
	}
}
