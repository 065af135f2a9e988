package autolink

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutolink_NoMatches_ReturnsInputUnchanged(t *testing.T) {
	text := []byte("hello world, nothing to see here")

	out, count, err := Autolink(text, Options{})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, text, out)
}

func TestAutolink_EmptyInput(t *testing.T) {
	out, count, err := Autolink([]byte{}, Options{})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Empty(t, out)
}

func TestAutolink_PlainURL(t *testing.T) {
	out, count, err := Autolink([]byte("Visit http://example.com."), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t,
		`Visit <a href="http://example.com">http://example.com</a>.`,
		string(out))
}

func TestAutolink_WWWDomain_HrefGetsScheme(t *testing.T) {
	out, count, err := Autolink([]byte("go to www.example.com now"), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t,
		`go to <a href="http://www.example.com">www.example.com</a> now`,
		string(out))
}

func TestAutolink_Email_HrefGetsMailto(t *testing.T) {
	out, count, err := Autolink([]byte("mail a@b.com"), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, `mail <a href="mailto:a@b.com">a@b.com</a>`, string(out))
}

func TestAutolink_MultipleLinks_ScanOrder(t *testing.T) {
	out, count, err := Autolink([]byte("a@b.com then http://x.com"), Options{})
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t,
		`<a href="mailto:a@b.com">a@b.com</a> then <a href="http://x.com">http://x.com</a>`,
		string(out))
}

func TestAutolink_SkipTags_Default(t *testing.T) {
	text := []byte("<pre>http://example.com</pre>")

	out, count, err := Autolink(text, Options{})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, text, out)
}

func TestAutolink_SkipTags_EmptySetDisablesSkipping(t *testing.T) {
	text := []byte("<pre>http://example.com</pre>")

	out, count, err := Autolink(text, Options{SkipTags: []string{}})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t,
		`<pre><a href="http://example.com">http://example.com</a></pre>`,
		string(out))
}

func TestAutolink_SkipTags_CustomSetWithoutPre(t *testing.T) {
	text := []byte("<pre>http://example.com</pre>")

	_, count, err := Autolink(text, Options{SkipTags: []string{"a", "code"}})
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestAutolink_SkipTags_CaseInsensitive(t *testing.T) {
	text := []byte("<PRE>http://example.com</PRE>")

	out, count, err := Autolink(text, Options{})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, text, out)
}

func TestAutolink_ExistingAnchor_NotDoubleLinked(t *testing.T) {
	text := []byte(`click <a href="http://x.com">here</a> now`)

	out, count, err := Autolink(text, Options{})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, text, out)
}

func TestAutolink_AnchorFollowedByPlainURL(t *testing.T) {
	text := []byte(`<a href="http://a.com">a</a> and http://b.com`)

	out, count, err := Autolink(text, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t,
		`<a href="http://a.com">a</a> and <a href="http://b.com">http://b.com</a>`,
		string(out))
}

func TestAutolink_UnterminatedSkipTag_CopiedVerbatim(t *testing.T) {
	text := []byte("<pre>http://example.com")

	out, count, err := Autolink(text, Options{})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, text, out)
}

func TestAutolink_UnknownTag_ContentStillLinked(t *testing.T) {
	text := []byte("<p>http://example.com</p>")

	_, count, err := Autolink(text, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestAutolink_ModeEmails(t *testing.T) {
	text := []byte("mail me at a@b.com or visit http://x.com")

	out, count, err := Autolink(text, Options{Mode: ModeEmails})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t,
		`mail me at <a href="mailto:a@b.com">a@b.com</a> or visit http://x.com`,
		string(out))
}

func TestAutolink_ModeURLs(t *testing.T) {
	text := []byte("mail me at a@b.com or visit http://x.com")

	out, count, err := Autolink(text, Options{Mode: ModeURLs})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t,
		`mail me at a@b.com or visit <a href="http://x.com">http://x.com</a>`,
		string(out))
}

func TestAutolink_InvalidMode(t *testing.T) {
	_, _, err := Autolink([]byte("http://x.com"), Options{Mode: Mode(42)})
	require.ErrorIs(t, err, ErrInvalidMode)
}

func TestAutolink_ShortDomains(t *testing.T) {
	text := []byte("http://localhost")

	_, count, err := Autolink(text, Options{})
	require.NoError(t, err)
	require.Zero(t, count)

	out, count, err := Autolink(text, Options{Flags: ShortDomains})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, `<a href="http://localhost">http://localhost</a>`, string(out))
}

func TestAutolink_UnsafeScheme_NotLinked(t *testing.T) {
	text := []byte("click javascript:alert(1)")

	out, count, err := Autolink(text, Options{})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, text, out)
}

func TestAutolink_BalancedParens(t *testing.T) {
	out, count, err := Autolink(
		[]byte("foo http://www.pokemon.com/Pikachu_(Electric) bar"), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t,
		`foo <a href="http://www.pokemon.com/Pikachu_(Electric)">http://www.pokemon.com/Pikachu_(Electric)</a> bar`,
		string(out))
}

func TestAutolink_OuterParenExcluded(t *testing.T) {
	out, count, err := Autolink(
		[]byte("foo (http://www.pokemon.com/Pikachu_(Electric)) bar"), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t,
		`foo (<a href="http://www.pokemon.com/Pikachu_(Electric)">http://www.pokemon.com/Pikachu_(Electric)</a>) bar`,
		string(out))
}

func TestAutolink_LinkAttr(t *testing.T) {
	out, count, err := Autolink([]byte("http://www.pokemon.com"), Options{
		LinkAttr: `target="_blank"`,
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t,
		`<a href="http://www.pokemon.com" target="_blank">http://www.pokemon.com</a>`,
		string(out))
}

func TestAutolink_OnLink_OverridesText(t *testing.T) {
	out, count, err := Autolink([]byte("see http://x.com"), Options{
		OnLink: func(match []byte) ([]byte, error) {
			require.Equal(t, "http://x.com", string(match))
			return []byte("LINK"), nil
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, `see <a href="http://x.com">LINK</a>`, string(out))
}

func TestAutolink_OnLink_NilResultAbortsScan(t *testing.T) {
	out, count, err := Autolink([]byte("see http://x.com"), Options{
		OnLink: func([]byte) ([]byte, error) { return nil, nil },
	})
	require.ErrorIs(t, err, ErrInvalidCallbackResult)
	require.Nil(t, out)
	require.Zero(t, count)
}

func TestAutolink_OnLink_ErrorAbortsScan(t *testing.T) {
	boom := errors.New("boom")

	out, _, err := Autolink([]byte("see http://x.com and http://y.com"), Options{
		OnLink: func([]byte) ([]byte, error) { return nil, boom },
	})
	require.ErrorIs(t, err, boom)
	require.Nil(t, out)
}

func TestAutolink_MultiByteTextPassesThrough(t *testing.T) {
	out, count, err := Autolink([]byte("привет www.example.com пока"), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t,
		`привет <a href="http://www.example.com">www.example.com</a> пока`,
		string(out))
}
