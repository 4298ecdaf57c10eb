package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"mailassist/internal/assistant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailTemplatesHandler(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodGet, "/api/email-templates", "")

	err := EmailTemplatesHandler()(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var catalog map[string]assistant.Template
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))

	for _, id := range []string{"thank_you", "follow_up", "meeting_request", "project_update", "apology", "introduction", "proposal", "reminder"} {
		entry, ok := catalog[id]
		assert.True(t, ok, "missing template %s", id)
		assert.NotEmpty(t, entry.Name)
		assert.NotEmpty(t, entry.Description)
		assert.NotEmpty(t, entry.Example)
	}
}
