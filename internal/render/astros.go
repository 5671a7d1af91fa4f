package render

import (
	"fmt"
	"strings"
)

const peopleFallback = "\n### 👨‍🚀 Humans Among the Stars\n\nCould not retrieve data on people in space. Please check back later!\n"

// FormatPeopleInSpace renders the people-in-orbit section: a headline count
// and one bullet per person. A nil payload yields the static fallback; an
// empty or malformed people list yields a single "no names" bullet.
func FormatPeopleInSpace(data map[string]any) string {
	if data == nil {
		return peopleFallback
	}

	number := intFromAny(data["number"])

	var list strings.Builder
	if people, ok := data["people"].([]any); ok && len(people) > 0 {
		for _, p := range people {
			person, _ := p.(map[string]any)
			name := getStringOr(person, "name", "Unknown Astronaut")
			craft := getStringOr(person, "craft", "Unknown Craft")
			fmt.Fprintf(&list, "* %s (%s)\n", name, craft)
		}
	} else {
		list.WriteString("* No specific names available at this time.\n")
	}

	return fmt.Sprintf(
		"\n### 👨‍🚀 Humans Among the Stars\n\nThere are currently **%d** people in space!\n\n**Onboard:**\n%s\n",
		number, list.String(),
	)
}

func intFromAny(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}
