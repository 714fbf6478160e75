package ranking

import "strconv"

// Ordinal renders a 0-based rank index as a 1-based English ordinal:
// 0 -> "1st", 1 -> "2nd", 10 -> "11th", 20 -> "21st".
func Ordinal(rank int) string {
	n := rank + 1

	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		// 11th, 12th, 13th
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}

	return strconv.Itoa(n) + suffix
}
