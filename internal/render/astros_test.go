package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFormatPeopleInSpaceUnavailable(t *testing.T) {
	want := "\n### 👨‍🚀 Humans Among the Stars\n\nCould not retrieve data on people in space. Please check back later!\n"
	assert.Equal(t, want, FormatPeopleInSpace(nil))
}

func TestFormatPeopleInSpace(t *testing.T) {
	data := map[string]any{
		"number": float64(3),
		"people": []any{
			map[string]any{"name": "Oleg Kononenko", "craft": "ISS"},
			map[string]any{"name": "Tracy Dyson", "craft": "ISS"},
			map[string]any{"name": "Li Guangsu", "craft": "Tiangong"},
		},
	}

	got := FormatPeopleInSpace(data)

	want := "\n### 👨‍🚀 Humans Among the Stars\n\n" +
		"There are currently **3** people in space!\n\n" +
		"**Onboard:**\n" +
		"* Oleg Kononenko (ISS)\n" +
		"* Tracy Dyson (ISS)\n" +
		"* Li Guangsu (Tiangong)\n\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatPeopleInSpaceEmptyList(t *testing.T) {
	data := map[string]any{"number": float64(0), "people": []any{}}

	got := FormatPeopleInSpace(data)

	assert.Contains(t, got, "There are currently **0** people in space!")
	assert.Contains(t, got, "* No specific names available at this time.")
}

func TestFormatPeopleInSpaceMalformed(t *testing.T) {
	t.Run("people is not a list", func(t *testing.T) {
		data := map[string]any{"number": float64(5), "people": "classified"}

		got := FormatPeopleInSpace(data)

		assert.Contains(t, got, "There are currently **5** people in space!")
		assert.Contains(t, got, "* No specific names available at this time.")
	})

	t.Run("missing fields get placeholder names", func(t *testing.T) {
		data := map[string]any{
			"number": float64(2),
			"people": []any{
				map[string]any{"craft": "ISS"},
				map[string]any{"name": "Sunita Williams"},
			},
		}

		got := FormatPeopleInSpace(data)

		assert.Contains(t, got, "* Unknown Astronaut (ISS)")
		assert.Contains(t, got, "* Sunita Williams (Unknown Craft)")
	})

	t.Run("entry is not a map", func(t *testing.T) {
		data := map[string]any{"number": float64(1), "people": []any{"just a string"}}

		got := FormatPeopleInSpace(data)

		assert.Contains(t, got, "* Unknown Astronaut (Unknown Craft)")
	})

	t.Run("missing count renders as zero", func(t *testing.T) {
		got := FormatPeopleInSpace(map[string]any{})

		assert.Contains(t, got, "There are currently **0** people in space!")
	})
}
