package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestBlock(t *testing.T) {
	rule := "-----------------------------------"

	got := Block("Article", "# Title\nbody")

	assert.Equal(t, "Article\n"+rule+"\n# Title\nbody\n"+rule+"\n", got)
}

func TestBlock_TrailingNewline(t *testing.T) {
	rule := "-----------------------------------"

	got := Block("Prompt", "text\n")

	assert.Equal(t, "Prompt\n"+rule+"\ntext\n"+rule+"\n", got)
}

func TestSaved(t *testing.T) {
	assert.Equal(t, "Article saved Path: articles/post.md", Saved("articles/post.md"))
}
