package matching

// Compare orders two file names with numeric awareness: digit runs compare
// as integers, everything else compares byte-wise. "ATEN 2.jpg" sorts before
// "ATEN 10.jpg". Returns -1, 0 or 1.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			ia := i
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			jb := j
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := trimZeros(a[ia:i])
			nb := trimZeros(b[jb:j])
			if len(na) != len(nb) {
				if len(na) < len(nb) {
					return -1
				}
				return 1
			}
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			continue
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	}
	return 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func trimZeros(s string) string {
	k := 0
	for k < len(s)-1 && s[k] == '0' {
		k++
	}
	return s[k:]
}
