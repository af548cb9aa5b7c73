package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func submitPayload() SubmitRequest {
	return SubmitRequest{
		StudentAnswerText: "A: 4",
		QuestionPaperText: "Q: 2+2=?",
		AnswerKeyText:     "A: 4",
		Filename:          "quiz1",
		EvaluationID:      "e1",
		Tone:              "friendly",
	}
}

func TestClientSubmit(t *testing.T) {
	var received SubmitRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/evaluate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success":      true,
			"message":      "Evaluation process started.",
			"evaluationId": received.EvaluationID,
		})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	require.NoError(t, c.Submit(context.Background(), submitPayload()))
	require.Equal(t, "e1", received.EvaluationID)
	require.Equal(t, "A: 4", received.StudentAnswerText)
}

func TestClientSubmitRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "All three documents and an evaluationId are required.",
		})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	err := c.Submit(context.Background(), SubmitRequest{EvaluationID: "e1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "All three documents")
}

func TestClientFetchState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/evaluation/e1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"status": "processing"},
		})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	state, err := c.FetchState(context.Background(), "e1")
	require.NoError(t, err)
	require.Equal(t, "processing", state.Status)
	require.Nil(t, state.Result)
}

func TestClientFetchStateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, nil)
	_, err := c.FetchState(context.Background(), "e1")
	require.Error(t, err)
}

func TestClientFetchStateMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	_, err := c.FetchState(context.Background(), "e1")
	require.Error(t, err)
}
