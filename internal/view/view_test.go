package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/dailies/pkg/types"
)

func TestInitial(t *testing.T) {
	assert.Equal(t, "S", Initial("sam"))
	assert.Equal(t, "É", Initial("élan"))
	assert.Equal(t, "", Initial(""))
	assert.Equal(t, "9", Initial("9gag"))
}

func TestGrid(t *testing.T) {
	out := Grid(types.DefaultLinks(), 4)
	for _, want := range []string{"Sam", "NYT", "Puzzmo", "S", "N", "P"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Sam"), strings.Index(out, "Puzzmo"), "tiles follow collection order")
	assert.NotContains(t, out, "https://", "grid shows names only")
}

func TestGrid_WrapsRows(t *testing.T) {
	oneRow := Grid(types.DefaultLinks(), 3)
	threeRows := Grid(types.DefaultLinks(), 1)
	assert.Greater(t, strings.Count(threeRows, "\n"), strings.Count(oneRow, "\n"))
}

func TestGrid_Empty(t *testing.T) {
	assert.Contains(t, Grid(nil, 0), "No links yet")
}

func TestGrid_TruncatesLongNames(t *testing.T) {
	out := Grid(types.Collection{{ID: "1", Name: "An extremely long link name", URL: "u"}}, 0)
	assert.Contains(t, out, "…")
}

func TestSettings(t *testing.T) {
	out := Settings(types.DefaultLinks())
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "0")
	assert.Contains(t, lines[1], "Sam")
	assert.Contains(t, lines[1], "https://www.cluesbysam.com/")
	assert.Contains(t, lines[1], "[1]")
	assert.Contains(t, lines[3], "Puzzmo")

	assert.Contains(t, Settings(nil), "(empty)")
}

func TestRenderer(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, ModeSettings, 0).Render(types.DefaultLinks())
	assert.Contains(t, buf.String(), "[2]")

	buf.Reset()
	NewRenderer(&buf, ModeGrid, 2).Render(types.DefaultLinks())
	assert.Contains(t, buf.String(), "Puzzmo")
	assert.NotContains(t, buf.String(), "[2]")
}
