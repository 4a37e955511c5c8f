package handlers

import (
	"reflect"
	"testing"
)

func TestParseLimitParam(t *testing.T) {
	if got, err := parseLimitParam("", 10); err != nil || got != 10 {
		t.Errorf("empty = (%d, %v), want fallback 10", got, err)
	}
	if got, err := parseLimitParam("25", 10); err != nil || got != 25 {
		t.Errorf("25 = (%d, %v)", got, err)
	}
	for _, raw := range []string{"0", "-1", "abc", "1.5"} {
		if _, err := parseLimitParam(raw, 10); err == nil {
			t.Errorf("%q: expected an error", raw)
		}
	}
}

func TestParseCollectionsParam(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"products,orders", []string{"products", "orders"}},
		{"orders, products", []string{"orders", "products"}},
		{"orders", []string{"orders"}},
		{"customers,orders", []string{"orders"}},
		{"customers", []string{}},
	}
	for _, tc := range cases {
		if got := parseCollectionsParam(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseCollectionsParam(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
