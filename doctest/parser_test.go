package doctest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExamplesFindsPromptLines(t *testing.T) {
	doc := `Some introduction text.

    >> 1 + 1
    2

More prose in between.

    >> mean([1, 2, 3, 4])
    2.5
`
	examples := parseExamples([]byte(doc))
	require.Len(t, examples, 2)

	assert.Equal(t, "1 + 1", examples[0].Source)
	assert.Equal(t, "2", examples[0].Expected)
	assert.Equal(t, 3, examples[0].Line)

	assert.Equal(t, "mean([1, 2, 3, 4])", examples[1].Source)
	assert.Equal(t, "2.5", examples[1].Expected)
	assert.Equal(t, 8, examples[1].Line)
}

func TestParseExamplesMultiLineExpectedOutput(t *testing.T) {
	doc := ">> \"a\\nb\"\nfirst\nsecond\n\nunrelated\n"
	examples := parseExamples([]byte(doc))
	require.Len(t, examples, 1)
	assert.Equal(t, "first\nsecond", examples[0].Expected)
}

func TestParseExamplesWithoutExpectedOutput(t *testing.T) {
	doc := ">> sqrt(2)\n\n>> 3 * 3\n9\n"
	examples := parseExamples([]byte(doc))
	require.Len(t, examples, 2)
	assert.Equal(t, "", examples[0].Expected)
	assert.Equal(t, "9", examples[1].Expected)
}

func TestParseExamplesConsecutivePrompts(t *testing.T) {
	doc := ">> 1\n>> 2\n2\n"
	examples := parseExamples([]byte(doc))
	require.Len(t, examples, 2)
	assert.Equal(t, "1", examples[0].Source)
	assert.Equal(t, "", examples[0].Expected)
	assert.Equal(t, "2", examples[1].Source)
	assert.Equal(t, "2", examples[1].Expected)
}

func TestParseExamplesSkipDirective(t *testing.T) {
	doc := ">> broken_thing()  # skip\nwhatever\n"
	examples := parseExamples([]byte(doc))
	require.Len(t, examples, 1)
	assert.True(t, examples[0].Skip)
	assert.Equal(t, "broken_thing()", examples[0].Source)
}

func TestParseExamplesIgnoresBarePrompt(t *testing.T) {
	examples := parseExamples([]byte(">> \ntext\n"))
	assert.Empty(t, examples)
}

func TestParseExamplesEmptyFile(t *testing.T) {
	assert.Empty(t, parseExamples(nil))
	assert.Empty(t, parseExamples([]byte("no examples here\n")))
}
