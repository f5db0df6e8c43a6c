package automaton

const (
	// Golden ratio bit mixer.
	PHI_C64 = uint64(0x9e3779b97f4a7c15)
)

// MurmurHash3 32-bit finalization step.
func mix32(v int) uint32 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return k ^ (k >> 16)
}

// mixPair hashes an ordered pair so that (x, y) and (y, x) land in different buckets.
func mixPair(x, y int) uint64 {
	h := uint64(mix32(x))*PHI_C64 + uint64(mix32(y))
	return h ^ (h >> 32)
}
