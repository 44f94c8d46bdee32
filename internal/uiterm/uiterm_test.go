package uiterm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_SkipsEmptyTokens(t *testing.T) {
	out := Render([]Token{PlainToken("a"), PlainToken(""), PlainToken("b")})
	require.Equal(t, "a b", out)
}

func TestWriteProgress_EndsWithCarriageReturn(t *testing.T) {
	var buf bytes.Buffer
	WriteProgress(&buf, []Token{PlainToken("Syncing"), PlainToken("foo")})

	s := buf.String()
	require.True(t, len(s) > 0)
	require.Equal(t, byte('\r'), s[len(s)-1])
	require.Contains(t, s, "Syncing foo")
}

func TestBullet_WithAndWithoutMessage(t *testing.T) {
	require.Contains(t, Bullet("foo", "fetch failed"), "foo")
	require.Contains(t, Bullet("foo", "fetch failed"), "fetch failed")
	require.NotContains(t, Bullet("foo", ""), ":")
}
