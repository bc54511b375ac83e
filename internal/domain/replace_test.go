package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceNav(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		inner   string
		want    string
		wantErr error
	}{
		{
			name:  "single nav",
			doc:   "<body>\n<nav id=\"topnav\">OLD</nav>\n<main></main>\n</body>",
			inner: "NEW",
			want:  "<body>\n<nav id=\"topnav\">\nNEW\n</nav>\n<main></main>\n</body>",
		},
		{
			name:  "multiline nav",
			doc:   "<nav id=\"topnav\">\n  <ul>\n    <li>a</li>\n  </ul>\n</nav>tail",
			inner: "X",
			want:  "<nav id=\"topnav\">\nX\n</nav>tail",
		},
		{
			name:  "empty nav",
			doc:   "<nav id=\"topnav\"></nav>",
			inner: "X",
			want:  "<nav id=\"topnav\">\nX\n</nav>",
		},
		{
			name:  "only first nav is replaced",
			doc:   "<nav id=\"topnav\">A</nav><p>mid</p><nav id=\"topnav\">B</nav>",
			inner: "X",
			want:  "<nav id=\"topnav\">\nX\n</nav><p>mid</p><nav id=\"topnav\">B</nav>",
		},
		{
			name:  "stops at first closing tag",
			doc:   "<nav id=\"topnav\">A</nav><nav class=\"footer\">F</nav>",
			inner: "X",
			want:  "<nav id=\"topnav\">\nX\n</nav><nav class=\"footer\">F</nav>",
		},
		{
			name:  "closing tag before start is ignored",
			doc:   "<nav>side</nav><nav id=\"topnav\">A</nav>",
			inner: "X",
			want:  "<nav>side</nav><nav id=\"topnav\">\nX\n</nav>",
		},
		{
			name:    "no start marker",
			doc:     "<nav class=\"other\">A</nav>",
			inner:   "X",
			want:    "<nav class=\"other\">A</nav>",
			wantErr: ErrNotPresent,
		},
		{
			name:    "start marker without end",
			doc:     "<nav id=\"topnav\"><ul></ul>",
			inner:   "X",
			want:    "<nav id=\"topnav\"><ul></ul>",
			wantErr: ErrMalformedDocument,
		},
		{
			name:    "end marker only before start",
			doc:     "</nav><nav id=\"topnav\">A",
			inner:   "X",
			want:    "</nav><nav id=\"topnav\">A",
			wantErr: ErrMalformedDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReplaceNav(tt.doc, tt.inner)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplaceNav_PreservesOutsideText(t *testing.T) {
	before := "<!DOCTYPE html>\n<html>\n<head><title>ünïcode</title></head>\n<body>\n"
	after := "\n<footer>&copy; 2024</footer>\n</body>\n</html>\n"
	doc := before + `<nav id="topnav"><ul><li><a href="index.html">Home</a></li></ul></nav>` + after

	got, err := ReplaceNav(doc, DefaultTemplate)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, before))
	assert.True(t, strings.HasSuffix(got, after))

	region := got[len(before) : len(got)-len(after)]
	assert.Equal(t, StartMarker+"\n"+DefaultTemplate+"\n"+EndMarker, region)
}

func TestReplaceNav_Idempotent(t *testing.T) {
	doc := "<body><nav id=\"topnav\">OLD</nav></body>"

	once, err := ReplaceNav(doc, "NEW")
	require.NoError(t, err)

	twice, err := ReplaceNav(once, "NEW")
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestHasNav(t *testing.T) {
	assert.True(t, HasNav(`<nav id="topnav">`))
	assert.False(t, HasNav(`<nav id='topnav'>`))
	assert.False(t, HasNav(""))
}
