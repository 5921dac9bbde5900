package state

import "fmt"

// FormatSelectionCount renders "N раз" with the word form Russian grammar
// expects after N: "раз" for 1, "раза" for 2-4, "раз" otherwise. Only the
// literal value is inspected, so 21 renders as "21 раз".
func FormatSelectionCount(count int) string {
	switch {
	case count == 1:
		return "1 раз"
	case count >= 2 && count <= 4:
		return fmt.Sprintf("%d раза", count)
	default:
		return fmt.Sprintf("%d раз", count)
	}
}
