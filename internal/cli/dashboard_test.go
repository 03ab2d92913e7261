package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPrompts feeds canned answers to the interactive prompt helper.
func stubPrompts(t *testing.T, answers []string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func TestDashboard_AdminStatsIncludeRoleCounts(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	login(t, a, "admin@gallery.com", "admin123")

	out := captureOutput(t)
	require.NoError(t, a.Dashboard(ctx, nil))

	joined := strings.Join(*out, "")
	assert.Contains(t, joined, "Artists: 2")
	assert.Contains(t, joined, "Curators: 1")
	assert.Contains(t, joined, "Visitors: 2")
}

func TestDashboard_ArtistEditUpdatesOwnArtwork(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	login(t, a, "meera@gallery.com", "artist123")

	// Blank answers keep the stored value.
	stubPrompts(t, []string{"Monsoon Over Bundi, Study II", "", "", "210000", "monsoon, study"})
	muteOutput(t)

	require.NoError(t, a.Dashboard(ctx, []string{"edit", "1"}))

	art, err := a.catalog.Artwork(1)
	require.NoError(t, err)
	assert.Equal(t, "Monsoon Over Bundi, Study II", art.Title)
	assert.Equal(t, 210000, art.Price)
	assert.Equal(t, "Painting", art.Category)
	assert.Equal(t, "Contemporary", art.Era)
	assert.Equal(t, []string{"monsoon", "study"}, art.Tags)
}

func TestDashboard_ArtistCannotEditAnotherArtistsWork(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	login(t, a, "meera@gallery.com", "artist123")

	out := captureOutput(t)
	// Artwork 2 belongs to Ravi; no prompt must run.
	require.NoError(t, a.Dashboard(ctx, []string{"edit", "2"}))

	assert.Contains(t, strings.Join(*out, ""), "Not one of your artworks.")
	art, err := a.catalog.Artwork(2)
	require.NoError(t, err)
	assert.Equal(t, "Dancer at Dusk", art.Title)
}
