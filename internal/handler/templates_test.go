package handler

import (
	"html/template"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	_, err := template.ParseGlob(filepath.Join("..", "..", "templates", "*.html"))
	require.NoError(t, err)
}

// Every registered edit route must be reachable from its listing page, not
// only by hand-crafted POSTs.
func TestListingPagesOfferEditForms(t *testing.T) {
	cases := map[string]string{
		"categories.html": `action="/category/edit/`,
		"products.html":   `action="/product/edit/`,
		"suppliers.html":  `action="/supplier/edit/`,
		"customers.html":  `action="/customer/edit/`,
	}
	for name, action := range cases {
		src, err := os.ReadFile(filepath.Join("..", "..", "templates", name))
		require.NoError(t, err, name)
		assert.Contains(t, string(src), action, name)
	}
}
