package memory

import (
	"context"
	"testing"

	"github.com/nguyentranbao-ct/team-chat/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatchesBodyAndAuthor(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	ch := f.mustChannel(t, "finance", models.ChannelTypeTeam)
	th := f.mustThread(t, ch.ID, "quarterly")
	strong := f.mustMessage(t, th.ID, "u-1", "Sarah Johnson", "Q4 results are strong")
	discuss := f.mustMessage(t, th.ID, "u-2", "Michael Chen", "let's discuss Q1")

	results, err := f.search.Search(ctx, "q1")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, discuss.ID, results[0].Message.ID)

	results, err = f.search.Search(ctx, "sarah")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, strong.ID, results[0].Message.ID)
	assert.Equal(t, th.ID, results[0].Thread.ID)
	assert.Equal(t, ch.ID, results[0].Channel.ID)
}

func TestSearchCorpusOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	chA := f.mustChannel(t, "alpha", models.ChannelTypeTeam)
	chB := f.mustChannel(t, "beta", models.ChannelTypeProject)
	thA1 := f.mustThread(t, chA.ID, "one")
	thA2 := f.mustThread(t, chA.ID, "two")
	thB1 := f.mustThread(t, chB.ID, "three")

	// interleave sends across threads and channels
	m3 := f.mustMessage(t, thB1.ID, "u-1", "Sarah Johnson", "keyword z")
	m1 := f.mustMessage(t, thA1.ID, "u-1", "Sarah Johnson", "keyword x")
	m2 := f.mustMessage(t, thA2.ID, "u-1", "Sarah Johnson", "keyword y")

	results, err := f.search.Search(ctx, "keyword")
	require.NoError(t, err)
	require.Len(t, results, 3)
	// channel insertion order, then thread creation order, then arrival order
	assert.Equal(t, m1.ID, results[0].Message.ID)
	assert.Equal(t, m2.ID, results[1].Message.ID)
	assert.Equal(t, m3.ID, results[2].Message.ID)
}

func TestSearchNoMatches(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	ch := f.mustChannel(t, "finance", models.ChannelTypeTeam)
	th := f.mustThread(t, ch.ID, "quarterly")
	f.mustMessage(t, th.ID, "u-1", "Sarah Johnson", "nothing relevant")

	results, err := f.search.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchIsRecomputedPerCall(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	ch := f.mustChannel(t, "finance", models.ChannelTypeTeam)
	th := f.mustThread(t, ch.ID, "quarterly")
	f.mustMessage(t, th.ID, "u-1", "Sarah Johnson", "forecast draft")

	results, err := f.search.Search(ctx, "forecast")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	f.mustMessage(t, th.ID, "u-2", "Michael Chen", "forecast approved")
	results, err = f.search.Search(ctx, "forecast")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	require.NoError(t, f.channels.Delete(ctx, ch.ID))
	results, err = f.search.Search(ctx, "forecast")
	require.NoError(t, err)
	assert.Empty(t, results)
}
