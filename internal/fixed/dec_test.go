package fixed

import "testing"

func TestDec(t *testing.T) {
	tests := []struct {
		n        uint32
		width    int
		expected string
	}{
		{0, 5, "00000"},
		{42, 5, "00042"},
		{400, 3, "400"},
		{7, 3, "007"},
		{123456, 5, "23456"},
		{999999, 6, "999999"},
		{4294967295, 10, "4294967295"},
		{12, 0, ""},
	}

	for _, tc := range tests {
		if got := Dec(tc.n, tc.width); got != tc.expected {
			t.Errorf("Dec(%d, %d) = %q, expected %q", tc.n, tc.width, got, tc.expected)
		}
	}
}
