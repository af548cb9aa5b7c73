package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreAddPrependsNewest(t *testing.T) {
	store := NewStore()
	store.Add(Evaluation{ID: "e1", Title: "Physics Mid-term", Status: StatusProcessing})
	store.Add(Evaluation{ID: "e2", Title: "Chemistry Lab Report", Status: StatusProcessing})

	list := store.List()
	require.Len(t, list, 2)
	require.Equal(t, "e2", list[0].ID)
	require.Equal(t, "e1", list[1].ID)
}

func TestStoreUpdateAppliesPatch(t *testing.T) {
	store := NewStore()
	store.Add(Evaluation{ID: "e1", Status: StatusProcessing})

	ok := store.Update("e1", func(e *Evaluation) {
		e.Status = StatusCompleted
		score := 88
		e.Score = &score
	})
	require.True(t, ok)

	evaluation, found := store.Get("e1")
	require.True(t, found)
	require.Equal(t, StatusCompleted, evaluation.Status)
	require.NotNil(t, evaluation.Score)
	require.Equal(t, 88, *evaluation.Score)
}

func TestStoreUpdateUnknownID(t *testing.T) {
	store := NewStore()
	require.False(t, store.Update("missing", func(e *Evaluation) {
		e.Status = StatusError
	}))
}

func TestStoreProcessingFilter(t *testing.T) {
	store := NewStore()
	store.Add(Evaluation{ID: "e1", Status: StatusCompleted})
	store.Add(Evaluation{ID: "e2", Status: StatusProcessing})
	store.Add(Evaluation{ID: "e3", Status: StatusError})
	store.Add(Evaluation{ID: "e4", Status: StatusProcessing})

	require.ElementsMatch(t, []string{"e2", "e4"}, store.Processing())
}

func TestStoreReset(t *testing.T) {
	store := NewStore()
	store.Add(Evaluation{ID: "e1", Status: StatusProcessing})
	store.Reset()

	require.Empty(t, store.List())
	_, found := store.Get("e1")
	require.False(t, found)
}
