package osc

// Match reports whether pattern matches address in full. pattern may
// contain the glob metacharacters '?', '*', '[...]'/'[!...]', and
// '{...,...}'; address is taken as a literal string (no metacharacter
// handling on that side).
func Match(pattern, address string) bool {
	ok, _, _ := matchFrom(pattern, address, false)
	return ok
}

// MatchPartial reports whether prefix is a prefix of some string that
// pattern could match: matching succeeds early, before the whole
// pattern is consumed, the moment address runs out of characters.
func MatchPartial(pattern, prefix string) bool {
	if prefix == "" {
		return len(pattern) > 0 && pattern[0] == '/'
	}
	ok, _, _ := matchFrom(pattern, prefix, true)
	return ok
}

// IsLiteral reports whether pattern contains none of the glob
// metacharacters '?', '*', '[', '{'.
func IsLiteral(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '?', '*', '[', '{':
			return false
		}
	}
	return true
}

// PartCount returns the number of '/'-delimited segments in s, i.e.
// the number of '/' characters it contains.
func PartCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			n++
		}
	}
	return n
}

// PartAt copies the i-th slash-delimited segment of s (not including
// either delimiting slash) into out, returning the number of bytes
// written.
func PartAt(s string, i int, out []byte) (int, error) {
	part := 0
	start := -1
	for pos := 0; pos <= len(s); pos++ {
		if pos == len(s) || s[pos] == '/' {
			if start >= 0 {
				if part == i {
					seg := s[start:pos]
					if len(seg) > len(out) {
						return 0, ErrDestTooSmall
					}
					return copy(out, seg), nil
				}
				part++
			}
			start = pos + 1
		}
	}
	return 0, ErrNotEnoughPartsInAddressPattern
}

// matchFrom matches pattern against s starting at the beginning of
// both. partial selects MatchPartial semantics: running out of s
// while pattern still has content succeeds rather than fails.
// Returns whether the match succeeded, plus how far into pattern and
// s the match consumed. Match and MatchPartial use only the boolean;
// brace alternation ranks competing alternatives by their own length.
func matchFrom(pattern, s string, partial bool) (bool, int, int) {
	pi, si := 0, 0
	for pi < len(pattern) {
		pc := pattern[pi]
		switch pc {
		case '*':
			pi++
			for pi < len(pattern) && pattern[pi] == '*' {
				pi++
			}
			if pi == len(pattern) || pattern[pi] == '/' {
				for si < len(s) && s[si] != '/' {
					si++
				}
				continue
			}
			for {
				ok, consumedP, consumedS := matchFrom(pattern[pi:], s[si:], partial)
				if ok {
					return true, pi + consumedP, si + consumedS
				}
				if si >= len(s) || s[si] == '/' {
					return false, 0, 0
				}
				si++
			}

		case '?':
			if si >= len(s) {
				if partial {
					return true, pi, si
				}
				return false, 0, 0
			}
			pi++
			si++

		case '[':
			end := findClose(pattern, pi, ']')
			if end == -1 {
				return false, 0, 0
			}
			if si >= len(s) {
				if partial {
					return true, pi, si
				}
				return false, 0, 0
			}
			if !matchBracket(pattern[pi+1:end], s[si]) {
				return false, 0, 0
			}
			pi = end + 1
			si++

		case '{':
			end := findClose(pattern, pi, '}')
			if end == -1 {
				return false, 0, 0
			}
			return matchBrace(pattern[pi+1:end], pattern[end+1:], s, si, partial)

		default:
			if si >= len(s) {
				if partial {
					return true, pi, si
				}
				return false, 0, 0
			}
			if s[si] != pc {
				return false, 0, 0
			}
			pi++
			si++
		}
	}
	if si < len(s) {
		return false, 0, 0
	}
	return true, pi, si
}

// findClose finds the index of the next close occurrence of closeCh
// starting after pattern[open], stopping (returning -1) at any '/' or
// the end of the string.
func findClose(pattern string, open int, closeCh byte) int {
	for i := open + 1; i < len(pattern); i++ {
		switch pattern[i] {
		case closeCh:
			return i
		case '/':
			return -1
		}
	}
	return -1
}

// matchBracket evaluates a '[...]' or '[!...]' body (without the
// surrounding brackets) against a single character.
func matchBracket(body string, c byte) bool {
	negate := false
	if len(body) > 0 && body[0] == '!' {
		negate = true
		body = body[1:]
	}
	matched := false
	for i := 0; i < len(body); i++ {
		if i+2 < len(body) && body[i+1] == '-' {
			lo, hi := body[i], body[i+2]
			if lo > hi {
				lo, hi = hi, lo
			}
			if c >= lo && c <= hi {
				matched = true
			}
			i += 2
			continue
		}
		if body[i] == c {
			matched = true
		}
	}
	return matched != negate
}

// matchBrace evaluates a '{a,b,c}' alternation. body is the
// comma-separated alternative list (without braces); rest is the
// pattern text following the closing brace. Each alternative is tried
// against s followed by rest; the longest alternative that leads to
// an overall match wins, per the "longest match wins" rule — but only
// among alternatives for which the remainder of the pattern also
// matches. In partial mode, an alternative that s runs out partway
// through also succeeds immediately, the same as running out inside a
// literal or bracket match.
func matchBrace(body, rest, s string, si int, partial bool) (bool, int, int) {
	alts := splitAlternatives(body)

	bestOK := false
	bestConsumedP := 0
	bestConsumedS := 0
	bestLen := -1

	for _, alt := range alts {
		if si+len(alt) > len(s) {
			if partial && s[si:] == alt[:len(s)-si] {
				return true, 0, len(s)
			}
			continue
		}
		if s[si:si+len(alt)] != alt {
			continue
		}
		ok, consumedP, consumedS := matchFrom(rest, s[si+len(alt):], partial)
		if !ok {
			continue
		}
		if len(alt) > bestLen {
			bestLen = len(alt)
			bestOK = true
			bestConsumedP = consumedP
			bestConsumedS = len(alt) + consumedS
		}
	}
	if bestOK {
		return true, bestConsumedP, si + bestConsumedS
	}
	if partial && si >= len(s) {
		return true, 0, si
	}
	return false, 0, 0
}

// splitAlternatives splits a brace body on top-level commas. Empty
// alternatives (consecutive or leading/trailing commas) are kept as
// empty strings, since the grammar allows them.
func splitAlternatives(body string) []string {
	if body == "" {
		return []string{""}
	}
	var alts []string
	start := 0
	for i := 0; i <= len(body); i++ {
		if i == len(body) || body[i] == ',' {
			alts = append(alts, body[start:i])
			start = i + 1
		}
	}
	return alts
}
