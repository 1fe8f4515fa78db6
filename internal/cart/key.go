package cart

import (
	"fmt"
	"sort"
	"strings"
)

// identityKey canonicalises a configuration tuple. Two lines merge exactly
// when their keys are equal; ingredient and extra order never matters.
func identityKey(itemID int, sel Selection) string {
	sizeKey := "default"
	if sel.Size != nil {
		sizeKey = sel.Size.Name
	}
	return fmt.Sprintf("%d-%s-%s-%s-%s-%s-%s",
		itemID,
		sizeKey,
		sortedKey(sel.Ingredients),
		sortedKey(sel.Extras),
		orNone(sel.PastaType),
		orNone(sel.Sauce),
		orNone(sel.SpecialRequest),
	)
}

func sortedKey(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func orNone(value string) string {
	if value == "" {
		return "none"
	}
	return value
}
