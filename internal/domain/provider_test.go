package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t, "What is ReactJS? A JS library",
		BuildPrompt("What is ReactJS?", "A JS library"))
	assert.Equal(t, "A JS library", BuildPrompt("", "A JS library"))
}
