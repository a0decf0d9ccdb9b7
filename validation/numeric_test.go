package validation

import "testing"

func TestParseStrict(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1234.5", 1234.5, true},
		{"-500", -500, true},
		{"0", 0, true},
		{"1,234", 0, false},
		{"12 000", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := parseStrict(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("parseStrict(%q) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestCleanNumeric(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		cleaned string
		ok      bool
	}{
		{"1,234.50", 1234.5, "1234.50", true},
		{"12 000 000", 12000000, "12000000", true},
		{"12 000", 12000, "12000", true}, // khoảng trắng cứng từ bảng tính
		{"5_000", 5000, "5000", true},
		{"₫2000", 2000, "2000", true},
		{"2000 VND", 2000, "2000", true},
		{"1500đ", 1500, "1500", true},
		{"1.500.000", 0, "1.500.000", false}, // dấu chấm không phải ký tự định dạng
		{"abc", 0, "abc", false},
		{"", 0, "", false},
		{"VND", 0, "", false},
	}
	for _, c := range cases {
		got, cleaned, ok := cleanNumeric(c.in)
		if ok != c.ok || got != c.want || cleaned != c.cleaned {
			t.Errorf("cleanNumeric(%q) = (%v, %q, %v), want (%v, %q, %v)",
				c.in, got, cleaned, ok, c.want, c.cleaned, c.ok)
		}
	}
}
