// pipeline_radix.go - Radix Sorter: stable ascending sort of valid faces by depth key

package rasterpipe

import "math"

// SortFaces stably sorts p.ValidFaceIDs()[:n] and p.DepthKeys()[:n]
// (n = p.ValidCount()) into ascending depth-key order, using an LSD radix
// sort over the IEEE-754 bit pattern of each float32 key.
//
// A plain uint32 reinterpretation of a float32's bits does not sort
// correctly: for positive floats, bit order already matches numeric
// order, but negative floats sort backwards (their sign bit set makes
// them compare as "larger" than positives under unsigned comparison) and
// among themselves sort in reverse. The standard fix flips every bit of
// a negative key and flips only the sign bit of a positive key, which
// makes unsigned-integer order over the transformed bits exactly match
// float order -- see radixKey below.
//
// Four 8-bit passes over the 32-bit transformed key, each stable (ties
// preserve relative input order, which is what makes painter's-algorithm
// depth sorting correct for near-coplanar faces), double-buffered between
// p's primary arrays and its aux arrays with no extra allocation.
func SortFaces(p *Pool) {
	n := p.ValidCount()
	if n <= 1 {
		return
	}

	srcIDs, srcKeys := p.ValidFaceIDs(), p.DepthKeys()
	dstIDs, dstKeys := p.auxFaceIDs, p.auxDepths
	hist := &p.histogram

	for pass := 0; pass < 4; pass++ {
		shift := uint(pass * 8)

		for i := range hist {
			hist[i] = 0
		}
		for i := 0; i < n; i++ {
			b := (radixKey(srcKeys[i]) >> shift) & 0xFF
			hist[b]++
		}

		var sum uint32
		for i := range hist {
			c := hist[i]
			hist[i] = sum
			sum += c
		}

		for i := 0; i < n; i++ {
			b := (radixKey(srcKeys[i]) >> shift) & 0xFF
			pos := hist[b]
			hist[b]++
			dstIDs[pos] = srcIDs[i]
			dstKeys[pos] = srcKeys[i]
		}

		srcIDs, dstIDs = dstIDs, srcIDs
		srcKeys, dstKeys = dstKeys, srcKeys
	}

	// Four passes is even, so after the loop srcIDs/srcKeys (the arrays
	// the last pass wrote into) alias the arrays the loop started from.
	// Copy the sorted result back into the pool's canonical arrays only
	// if the ping-pong left it in the aux buffer.
	if &srcIDs[0] != &p.validFaceIDs[0] {
		copy(p.validFaceIDs[:n], srcIDs[:n])
		copy(p.depthKeys[:n], srcKeys[:n])
	}
}

// radixKey transforms a float32's bit pattern so that unsigned integer
// comparison over the result matches numeric float comparison.
func radixKey(f float32) uint32 {
	bits := math.Float32bits(f)
	mask := uint32(int32(bits)>>31) | 0x80000000
	return bits ^ mask
}
