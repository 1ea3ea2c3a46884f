package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fahmi-a-r/typo-corrector/pkg/bktree"
	"github.com/fahmi-a-r/typo-corrector/pkg/corrector"
	helper "github.com/fahmi-a-r/typo-corrector/pkg/http/http-router/router-helper"
	"github.com/fahmi-a-r/typo-corrector/pkg/http/usecases"
	"github.com/fahmi-a-r/typo-corrector/pkg/metric"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, words map[string]uint32) http.Handler {
	t.Helper()

	tree := bktree.New(metric.NewLevenshtein())
	for word, priority := range words {
		tree.Insert([]rune(word), priority)
	}

	log := zap.NewNop()
	service := usecases.New(log, corrector.New(tree, log), 8)

	router := httprouter.New()
	group := helper.NewRouteGroup(router, "/")
	New(service, log).Routes(group)
	return router
}

type correctionResponseBody struct {
	Word         string                `json:"word"`
	Tolerance    uint32                `json:"tolerance"`
	Results      []bktree.SearchResult `json:"results"`
	Milliseconds int64                 `json:"milliseconds"`
}

func TestCorrectEndpoint(t *testing.T) {
	router := newTestRouter(t, map[string]uint32{"cat": 5, "car": 3, "bat": 2})

	t.Run("batch is index aligned", func(t *testing.T) {
		body := `[
			{"candidate": "cat", "max_tolerance": 1},
			{"candidate": "zzz", "max_tolerance": 0},
			{"candidate": "BAT", "max_tolerance": 0}
		]`
		request := httptest.NewRequest(http.MethodPost, "/correct", strings.NewReader(body))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var responses []correctionResponseBody
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responses))
		require.Len(t, responses, 3)

		assert.Equal(t, "cat", responses[0].Word)
		assert.Equal(t, uint32(1), responses[0].Tolerance)
		require.Len(t, responses[0].Results, 3)
		assert.Equal(t, bktree.SearchResult{Word: "cat", Tolerance: 0, Priority: 5}, responses[0].Results[0])
		assert.Equal(t, bktree.SearchResult{Word: "car", Tolerance: 1, Priority: 3}, responses[0].Results[1])
		assert.Equal(t, bktree.SearchResult{Word: "bat", Tolerance: 1, Priority: 2}, responses[0].Results[2])

		assert.Equal(t, "zzz", responses[1].Word)
		assert.Empty(t, responses[1].Results)

		// the driver folds case, the echoed word stays as sent
		assert.Equal(t, "BAT", responses[2].Word)
		require.Len(t, responses[2].Results, 1)
		assert.Equal(t, "bat", responses[2].Results[0].Word)
	})

	t.Run("empty batch", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/correct", strings.NewReader(`[]`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		var responses []correctionResponseBody
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responses))
		assert.Empty(t, responses)
	})

	t.Run("malformed body", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/correct", strings.NewReader(`{"candidate"`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing candidate fails validation", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/correct",
			strings.NewReader(`[{"max_tolerance": 1}]`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "request 0")
	})

	t.Run("unknown path is not found", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/other", strings.NewReader(`[]`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("wrong method is rejected", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/correct", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.NotEqual(t, http.StatusOK, recorder.Code)
	})
}
