package fixed

// maxDecWidth is the number of decimal digits in the largest uint32.
const maxDecWidth = 10

// Dec renders the lowest width decimal digits of n, zero padded on the left.
// Digits above width are dropped, matching a fixed-size HUD field.
func Dec(n uint32, width int) string {
	if width <= 0 {
		return ""
	}
	if width > maxDecWidth {
		width = maxDecWidth
	}

	var buf [maxDecWidth]byte
	out := buf[:width]
	for i := range out {
		out[i] = '0'
	}

	for i := width - 1; i >= 0; i-- {
		q, d := div10(n)
		out[i] = '0' + byte(d)
		if q == 0 {
			break
		}
		n = q
	}
	return string(out)
}

func div10(n uint32) (q, r uint32) {
	q = n / 10
	return q, n - q*10
}
