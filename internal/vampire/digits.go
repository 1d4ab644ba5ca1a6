package vampire

// digitCount returns the number of decimal digits in n. Zero has one digit.
func digitCount(n uint64) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// pow10 returns 10 to the power of exp. Inputs never exceed 10 because a
// uint64 has at most 20 digits, so the result always fits.
func pow10(exp int) uint64 {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		result *= 10
	}
	return result
}

// digitTally counts the occurrences of each decimal digit in n.
func digitTally(n uint64) [10]int {
	var tally [10]int
	tally[n%10]++
	for n >= 10 {
		n /= 10
		tally[n%10]++
	}
	return tally
}

// isFangPair reports whether the digits of a and b combined form exactly
// the digit multiset in target.
func isFangPair(target [10]int, a, b uint64) bool {
	combined := digitTally(a)
	for digit, count := range digitTally(b) {
		combined[digit] += count
	}
	return combined == target
}
