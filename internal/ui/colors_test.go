package ui

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestSprintHelpers(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	assert.Contains(t, SprintSuccess("done %d", 3), "done 3")
	assert.Contains(t, SprintError("boom"), "Error: boom")
}

func TestInitColors_RespectsNoColor(t *testing.T) {
	orig := color.NoColor
	defer func() { color.NoColor = orig }()

	t.Setenv("NO_COLOR", "1")
	InitColors()
	assert.True(t, color.NoColor)
}

func TestDisableColors(t *testing.T) {
	orig := color.NoColor
	defer func() { color.NoColor = orig }()

	DisableColors()
	assert.True(t, color.NoColor)
}
