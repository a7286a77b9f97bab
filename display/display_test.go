package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEarnings(t *testing.T) {
	assert.Equal(t, "993.3百万円", Earnings(993255000))
	assert.Equal(t, "1835.2百万円", Earnings(1835189000))
	assert.Equal(t, "0.0百万円", Earnings(0))
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, "30.61%", WinRate(30.61))
	assert.Equal(t, "100%", WinRate(100))
	assert.Equal(t, "0%", WinRate(0))
}

func TestCareer(t *testing.T) {
	assert.Equal(t, "9年", Career(9))
}
