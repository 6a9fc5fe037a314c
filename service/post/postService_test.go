package postsvc

import (
	"strings"
	"testing"

	"eternalink/model"
	postrepo "eternalink/repository/post"

	"github.com/stretchr/testify/require"
)

func TestList_SummariesWithSnippet(t *testing.T) {
	long := strings.Repeat("a", 300)
	repo := postrepo.NewStatic([]model.Post{
		{ID: 1, Title: "Short", Author: "A", PublishDate: "2025-06-12",
			Tags: []string{"news"}, HeroImage: "hero.jpg", ContentHTML: "<p>hello</p>"},
		{ID: 2, Title: "Long", ContentHTML: long},
	})
	svc := New(repo)

	got := svc.List()
	require.Len(t, got, 2)

	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, "Short", got[0].Title)
	require.Equal(t, []string{"news"}, got[0].Tags)
	require.Equal(t, "<p>hello</p>...", got[0].Snippet)

	require.Equal(t, long[:200]+"...", got[1].Snippet)
}

func TestGet_FullRecordOrNotFound(t *testing.T) {
	repo := postrepo.NewStatic([]model.Post{
		{ID: 1, Title: "With poll", Poll: &model.Poll{
			Question: "Which era?",
			Options:  []string{"old", "new"},
			Votes:    []int{3, 4},
		}},
	})
	svc := New(repo)

	p, err := svc.Get(1)
	require.NoError(t, err)
	require.NotNil(t, p.Poll)
	require.Equal(t, []int{3, 4}, p.Poll.Votes)

	_, err = svc.Get(42)
	require.ErrorIs(t, err, ErrNotFound)
}
