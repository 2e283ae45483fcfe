package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSpec_DocumentsAllRoutes(t *testing.T) {
	var doc struct {
		OpenAPI string                            `yaml:"openapi"`
		Paths   map[string]map[string]interface{} `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(Spec, &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)

	routes := map[string]string{
		"/api/transaction":                    "get",
		"/api/transaction/submittrxmessage":   "post",
		"/api/transaction/test-signature":     "get",
		"/api/transaction/login":              "post",
		"/api/transaction/generate-signature": "post",
		"/health":                             "get",
	}
	for path, method := range routes {
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "missing path %s", path) {
			assert.Contains(t, ops, method, "missing %s %s", method, path)
		}
	}
}
