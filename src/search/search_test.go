package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poem = `I'm nobody! Who are you?
Are you nobody, too?
Then there's a pair of us - don't tell!
They'd banish us, you know.

How dreary to be somebody!
How public, like a frog
To tell your name the livelong day
To an admiring bog!
`

func TestReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(name, []byte(poem), 0644))

	text, err := ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, poem, text)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"I'm nobody! Who are you?", "Are you nobody, too?", "How dreary to be somebody!"}, Lines("body", poem))
	assert.Equal(t, []string{"How public, like a frog"}, Lines("frog", poem))
	assert.Empty(t, Lines("Frog", poem))
	assert.Equal(t, []string{"a", "b"}, Lines("", "a\r\nb"))
}

func TestLinesTrailingNewline(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Lines("", "a\nb\n"))
	assert.Equal(t, []string{"a", ""}, Lines("", "a\n\n"))
	assert.Empty(t, Lines("", ""))
	assert.Len(t, Lines("", poem), 9)
}
