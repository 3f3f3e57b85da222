package utils_test

import (
	"cafe-menu-backend/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "5", utils.FormatPrice(5))
	assert.Equal(t, "0", utils.FormatPrice(0))
	assert.Equal(t, "14", utils.FormatPrice(14.0))
	assert.Equal(t, "6.50", utils.FormatPrice(6.5))
	assert.Equal(t, "4.25", utils.FormatPrice(4.25))
}
