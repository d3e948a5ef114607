package model

// Penn Treebank tags the title pipeline cares about.
const (
	TagNoun           = "NN"
	TagProperNoun     = "NNP"
	TagAdjective      = "JJ"
	TagVerbBase       = "VB"
	TagVerbPresent3rd = "VBZ"
	TagVerbPast       = "VBD"
)

// Token is a surface form paired with its part-of-speech tag.
type Token struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// Texts returns the surface forms of tokens in order.
func Texts(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}
