package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat_Time(t *testing.T) {
	tests := map[string]struct {
		d    time.Duration
		want string
	}{
		"seconds": {d: 1500 * time.Millisecond, want: "1.50s"},
		"minutes": {d: 90 * time.Second, want: "1m 30.00s"},
		"hours":   {d: 3*time.Hour + 2*time.Minute, want: "3h 2m 0.00s"},
		"days":    {d: 25 * time.Hour, want: "1d 1h 0m 0.00s"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.d))
		})
	}
}

func TestFormat_DecorateText(t *testing.T) {
	assert.Equal(t, SuccessColor+"done"+DefaultColor, DecorateText("done", SuccessMessage))
	assert.Equal(t, ErrorColor+"failed"+DefaultColor, DecorateText("failed", ErrorMessage))
	assert.Equal(t, StatusColor+"tint"+DefaultColor, DecorateText("tint", StatusMessage))
	assert.Equal(t, DefaultColor+"text"+DefaultColor, DecorateText("text", DefaultMessage))
	assert.Equal(t, "plain", DecorateText("plain", MessageType(99)))
}
