package main

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The swagger middleware serves this document as-is, so a broken spec
// would only surface in the browser. Validate it here instead.
func TestOpenAPIDocumentIsValid(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("public/docs/v1/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	assert.Equal(t, "WaveForge API", doc.Info.Title)

	for _, path := range []string{
		"/products",
		"/products/{slug}",
		"/bundles",
		"/bundles/{slug}",
		"/promo-code/validate",
		"/auth/register",
		"/auth/login",
		"/my-products",
		"/redeem",
		"/download/{id}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}
