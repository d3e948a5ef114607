package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-title-engine/services"
)

var _ services.Annotator = (*Prose)(nil)

func TestProse_Sentences(t *testing.T) {
	p := NewProse()

	sentences, err := p.Sentences("The cat sat. The cat ran fast.")
	require.NoError(t, err)
	require.Len(t, sentences, 2)
	assert.Equal(t, "The cat sat.", sentences[0])
	assert.Equal(t, "The cat ran fast.", sentences[1])

	empty, err := p.Sentences("   ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProse_Tokenize(t *testing.T) {
	p := NewProse()

	tokens, err := p.Tokenize("The cat sat.")
	require.NoError(t, err)
	assert.Contains(t, tokens, "cat")
	assert.Contains(t, tokens, "sat")

	empty, err := p.Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProse_TagOneTokenPerUnit(t *testing.T) {
	p := NewProse()

	units := []string{"big red", "car", "engine"}
	tagged, err := p.Tag(units)
	require.NoError(t, err)
	require.Len(t, tagged, len(units))
	for i, tok := range tagged {
		assert.Equal(t, units[i], tok.Text)
		assert.NotEmpty(t, tok.Tag)
	}

	none, err := p.Tag(nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProse_TagText(t *testing.T) {
	p := NewProse()

	tagged, err := p.TagText("Dogs chase cats.")
	require.NoError(t, err)
	require.NotEmpty(t, tagged)
	assert.Equal(t, "Dogs", tagged[0].Text)
}
