package radseek_test

import (
	"testing"

	"github.com/beltools/radseek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("splits on non-alphanumeric boundaries", func(t *testing.T) {
		t.Parallel()

		tokens := radseek.Tokenize("signal-strength: 42dB (high)")

		texts := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			texts = append(texts, tok.Text)
		}
		assert.Equal(t, []string{"signal", "strength", "42db", "high"}, texts)
	})

	t.Run("folds case", func(t *testing.T) {
		t.Parallel()

		tokens := radseek.Tokenize("RADAR Sweep")

		require.Len(t, tokens, 2)
		assert.Equal(t, "radar", tokens[0].Text)
		assert.Equal(t, "sweep", tokens[1].Text)
	})

	t.Run("records byte offsets into the original text", func(t *testing.T) {
		t.Parallel()

		text := "no data here"
		tokens := radseek.Tokenize(text)

		require.Len(t, tokens, 3)
		assert.Equal(t, 0, tokens[0].Offset)
		assert.Equal(t, 3, tokens[1].Offset)
		assert.Equal(t, 8, tokens[2].Offset)
		assert.Equal(t, "data", text[tokens[1].Offset:tokens[1].Offset+4])
	})

	t.Run("empty string yields empty sequence", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, radseek.Tokenize(""))
	})

	t.Run("symbols-only string yields empty sequence", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, radseek.Tokenize("--- :: !!"))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		text := "Target acquired at 14:32:05, bearing 270."

		first := radseek.Tokenize(text)
		second := radseek.Tokenize(text)

		assert.Equal(t, first, second)
	})

	t.Run("handles multibyte text", func(t *testing.T) {
		t.Parallel()

		tokens := radseek.Tokenize("écho détecté")

		require.Len(t, tokens, 2)
		assert.Equal(t, "écho", tokens[0].Text)
		assert.Equal(t, 0, tokens[0].Offset)
	})

	t.Run("token at end of text is emitted", func(t *testing.T) {
		t.Parallel()

		tokens := radseek.Tokenize("trailing token")

		require.Len(t, tokens, 2)
		assert.Equal(t, "token", tokens[1].Text)
	})
}
