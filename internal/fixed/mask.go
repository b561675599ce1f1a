package fixed

// ModPow2 returns x mod 2^p using a mask.
func ModPow2(x uint32, p uint) uint32 {
	return x & (1<<p - 1)
}

// DivisibleByPow2 reports whether x is a multiple of 2^p.
func DivisibleByPow2(x uint32, p uint) bool {
	return ModPow2(x, p) == 0
}

// SatSubU32 subtracts b from a, stopping at zero.
func SatSubU32(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

// SatSubU16 subtracts b from a, stopping at zero.
func SatSubU16(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}
