package setup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/threadboard/shared/config"
)

func TestSetupDependencies(t *testing.T) {
	cfg := &config.Config{Public: config.Public{
		Forum: config.Forum{
			PlaceholderAuthor:    "Anonymous",
			RecentPostsLimit:     5,
			SubmissionsPerMinute: 6,
			SubmissionBurst:      3,
			SeedThreads: []config.SeedThread{
				{Title: "Thread Title 1", Content: "x", Author: "Author1", CommentCount: 10, ViewCount: 100},
			},
		},
		Session: config.Session{TTL: time.Hour, SweepInterval: time.Minute},
	}}

	deps, err := SetupDependencies(cfg)
	require.NoError(t, err)
	defer deps.Close()

	assert.Contains(t, deps.Handler.Templates, "index.html")
	assert.Equal(t, "Anonymous", deps.Handler.Public.Forum.PlaceholderAuthor)

	_, store := deps.Sessions.Create()
	threads := store.List()
	require.Len(t, threads, 1)
	assert.Equal(t, "Thread Title 1", threads[0].Title)
}
