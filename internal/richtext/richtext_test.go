package richtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/richtext"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "paragraphs and line breaks",
			content:  "<p>Hello<br>world</p><p>Second &amp; last</p>",
			expected: "Hello\nworld\n\nSecond & last",
		},
		{
			name: "shortened link",
			content: `<p><a href="https://example.com/a/long/path"><span class="invisible">https://</span>` +
				`<span class="ellipsis">example.com/a/lo</span><span class="invisible">ng/path</span></a></p>`,
			expected: "example.com/a/lo…",
		},
		{
			name:     "plain text",
			content:  "just text",
			expected: "just text",
		},
		{
			name:     "empty",
			content:  "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := richtext.PlainText(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestBioText(t *testing.T) {
	text, err := richtext.BioText("<p>Bio</p>", []mastodon.Field{
		{Name: "Website", Value: `<a href="https://example.com">example.com</a>`},
		{Name: "Pronouns", Value: "they/them"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bio\n\nWebsite\nexample.com\n\nPronouns\nthey/them", text)

	text, err = richtext.BioText("", nil)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestSplitURL(t *testing.T) {
	niceURL, err := richtext.SplitURL("https://example.social/@alice/")
	require.NoError(t, err)
	assert.Equal(t, richtext.NiceURL{Host: "example.social", Path: "@alice"}, niceURL)

	_, err = richtext.SplitURL("/relative")
	require.Error(t, err)
}
