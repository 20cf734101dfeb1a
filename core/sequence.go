package core

// complement maps IUPAC nucleotide codes onto their complements;
// unmapped bytes complement to 'N'.
var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['U'] = 'A'
	complement['R'] = 'Y'
	complement['Y'] = 'R'
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['K'] = 'M'
	complement['M'] = 'K'
	complement['B'] = 'V'
	complement['V'] = 'B'
	complement['D'] = 'H'
	complement['H'] = 'D'
	complement['N'] = 'N'
	for b := 'a'; b <= 'z'; b++ {
		upper := byte(b) - 'a' + 'A'
		if c := complement[upper]; c != 0 {
			complement[b] = c - 'A' + 'a'
		}
	}
}

// RevComp returns the reverse complement of seq under the IUPAC
// alphabet, preserving case. Bytes outside the alphabet become 'N'.
// Complexity: O(n).
func RevComp(seq string) string {
	n := len(seq)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}

	return string(out)
}
