package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "navmend.dev/pkg/navmend/internal/model"
)

func TestAuditTemplate_Default(t *testing.T) {
	audit, err := AuditTemplate(DefaultTemplate, DefaultLinks)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string(DefaultLinks), audit.Links)
	assert.Empty(t, audit.Uncovered)
	assert.Empty(t, audit.Unused)
	assert.Empty(t, audit.Collisions)
	assert.True(t, audit.Safe())
}

func TestAuditTemplate_UncoveredAndUnused(t *testing.T) {
	tmpl := `<ul>
  <li><a href="index.html">Home</a></li>
  <li><a href="contact.html">Contact</a></li>
  <li><a href="https://example.org/">Partner</a></li>
  <li><a href="/absolute.html">Absolute</a></li>
  <li><a href="#top">Top</a></li>
  <li><a href="mailto:a@example.org">Mail</a></li>
</ul>`

	audit, err := AuditTemplate(tmpl, LinkTable{"index.html", "blog.html"})
	require.NoError(t, err)

	assert.Equal(t, []string{"contact.html"}, audit.Uncovered)
	assert.Equal(t, []string{"blog.html"}, audit.Unused)
	assert.True(t, audit.Safe())
}

func TestAuditTemplate_Collision(t *testing.T) {
	links := LinkTable{"a.html", `x" href="a.html`}

	audit, err := AuditTemplate(`<a href="a.html">A</a>`, links)
	require.NoError(t, err)

	assert.False(t, audit.Safe())
	assert.Equal(t, []m.Collision{{Entry: "a.html", Within: `x" href="a.html`}}, audit.Collisions)
}

func TestValidateLinks(t *testing.T) {
	require.NoError(t, ValidateLinks(DefaultLinks))
	require.NoError(t, ValidateLinks(nil))

	err := ValidateLinks(LinkTable{"a.html", `x" href="a.html`})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsafeTemplate))
}
