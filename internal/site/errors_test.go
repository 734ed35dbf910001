package site_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ziadkadry99/docsite/internal/content"
	"github.com/ziadkadry99/docsite/internal/doctree"
	"github.com/ziadkadry99/docsite/internal/site"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		status    int
		title     string
		retryable bool
	}{
		{"superseded", fmt.Errorf("wrapped: %w", site.ErrSuperseded), http.StatusConflict, "Superseded", false},
		{"unknown document", &doctree.DocumentNotFoundError{ID: "x"}, http.StatusNotFound, "Failed to load", false},
		{"unknown session", &site.SessionNotFoundError{ID: "s"}, http.StatusNotFound, "Session expired", false},
		{"missing file", fmt.Errorf("loading a: %w", &content.FetchError{Path: "a.md", Status: 404, Err: content.ErrNotFound}), http.StatusNotFound, "Failed to load", true},
		{"server error", &content.FetchError{Path: "a.md", Status: 500}, http.StatusBadGateway, "Failed to load", true},
		{"bad path", &content.FetchError{Path: "../a.md", Status: 400}, http.StatusBadRequest, "Failed to load", false},
		{"timeout", &content.FetchError{Path: "a.md", Err: context.DeadlineExceeded}, http.StatusGatewayTimeout, "Failed to load", true},
		{"malformed manifest", &doctree.MalformedManifestError{Problems: []doctree.Problem{{Location: "sections[0]", Reason: "missing id"}}}, http.StatusInternalServerError, "Invalid manifest", false},
		{"cancelled", context.Canceled, 499, "Cancelled", true},
		{"other", errors.New("boom"), http.StatusInternalServerError, "Internal error", false},
	}
	for _, tt := range tests {
		msg := site.Describe(tt.err)
		assert.Equal(t, tt.status, msg.Status, tt.name)
		assert.Equal(t, tt.title, msg.Title, tt.name)
		assert.Equal(t, tt.retryable, msg.Retryable, tt.name)
		assert.NotEmpty(t, msg.Message, tt.name)
	}

	assert.Equal(t, http.StatusOK, site.Describe(nil).Status)
}
