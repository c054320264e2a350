package seeders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Embedded(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)
	require.Len(t, c.Themes, 3)
	require.Len(t, c.Gifts, 4)
	assert.Equal(t, "classic", c.Themes[0].Code)
	assert.True(t, c.Themes[0].IsDefault)
	assert.Equal(t, "#FFF0F5", c.Themes[1].Background)
	assert.Equal(t, 4, c.Gifts[3].SortOrder)
}

func TestParseCatalog_Rejects(t *testing.T) {
	cases := map[string]string{
		"no themes":        "gifts:\n  - code: watch\n",
		"duplicate theme":  "themes:\n  - code: a\n  - code: a\n",
		"empty theme code": "themes:\n  - name: Nameless\n",
		"two defaults":     "themes:\n  - code: a\n    default: true\n  - code: b\n    default: true\n",
		"duplicate gift":   "themes:\n  - code: a\ngifts:\n  - code: g\n  - code: g\n",
		"bad yaml":         "themes: [",
	}
	for name, data := range cases {
		_, err := ParseCatalog([]byte(data))
		assert.Error(t, err, name)
	}
}
