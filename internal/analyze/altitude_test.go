package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAltitude(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Altitude
	}{
		{
			"three step markers is too low",
			"Step 1: open the file. Step 2: parse it. Step 3: close it.",
			AltitudeTooLow,
		},
		{
			"two step markers is not enough",
			"Step 1: read. Step 2: write.",
			AltitudeJustRight,
		},
		{
			"three vague exhortations is too high",
			"Be helpful. Be creative. Do your best.",
			AltitudeTooHigh,
		},
		{
			"too low wins over too high",
			"Step 1: x. Step 2: y. Step 3: z. Be helpful. Be creative. Do your best.",
			AltitudeTooLow,
		},
		{
			"elaborated exhortations do not count",
			"Be helpful by listing next steps. Be creative and vary the angle. Do your best.",
			AltitudeJustRight,
		},
		{
			"good markers rescue a vague prompt",
			"Be helpful. Be creative. Do your best. Focus on accuracy. Prioritize clarity.",
			AltitudeJustRight,
		},
		{
			"principle level language",
			"Focus on clarity. Prioritize the user's intent. Ensure that every claim is sourced.",
			AltitudeJustRight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyAltitude(tt.text))
		})
	}
}

func TestElaborated(t *testing.T) {
	// position is the end of the matched phrase
	text := "be professional by citing sources"
	assert.True(t, elaborated(text, len("be professional")))

	text = "be professional."
	assert.False(t, elaborated(text, len("be professional")))

	text = "be professional: cite sources"
	assert.True(t, elaborated(text, len("be professional")))

	text = "be professional And cite sources"
	assert.True(t, elaborated(text, len("be professional")))
}
