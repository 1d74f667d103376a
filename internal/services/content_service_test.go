package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	svc, err := NewContentService()
	require.NoError(t, err)

	assert.Equal(t, []string{"tools", "academy", "support", "simulators"}, svc.Sections())
	nav := svc.Navigation()
	require.Len(t, nav, 5)
	assert.Equal(t, "Home", nav[0].Name)

	academy := svc.Section("academy")
	require.NotNil(t, academy)
	assert.Len(t, academy.Items, 3)
	assert.Contains(t, academy.IntroHTML, "<strong>Certification program</strong>")

	support := svc.Section("support")
	require.NotNil(t, support)
	assert.Len(t, support.Articles, 4)

	assert.Nil(t, svc.Section("pricing"))
}

func TestCatalogEscapesRawHTML(t *testing.T) {
	svc, err := NewContentServiceFromYAML([]byte(`
sections:
  - slug: x
    title: X
    intro: "<script>alert(1)</script> hi"
`))
	require.NoError(t, err)
	sec := svc.Section("x")
	require.NotNil(t, sec)
	assert.NotContains(t, sec.IntroHTML, "<script>")
	assert.NotNil(t, sec.Items)
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewContentServiceFromYAML([]byte(`
sections:
  - slug: x
  - slug: x
`))
	assert.Error(t, err)

	_, err = NewContentServiceFromYAML([]byte("sections: [\n"))
	assert.Error(t, err)
}

func TestSectionReturnsCopy(t *testing.T) {
	svc, err := NewContentService()
	require.NoError(t, err)
	sec := svc.Section("tools")
	sec.Items[0].Name = "changed"
	assert.NotEqual(t, "changed", svc.Section("tools").Items[0].Name)
}
