package xsrftoken

// xorInto writes a XOR b into dst byte-wise. The fixed array types make the
// equal-length precondition structural.
func xorInto(dst, a, b *[TokenLen]byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
