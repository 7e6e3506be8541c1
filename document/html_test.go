package document

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<div id="list">
  <div id="row" mac="aa"><div class="state">one</div><div><span>a</span><span>b</span></div></div>
  <div id="row" mac="bb"><div class="state device_offline">two</div></div>
</div>
<p class="note">Hello <b>world</b></p>
</body></html>`

func TestFindAllByID(t *testing.T) {
	ctx := context.Background()
	root, err := ParseString(page)
	require.NoError(t, err)

	rows, err := root.FindAll(ctx, ID("row"))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	mac, ok, err := rows[1].Attr(ctx, "mac")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bb", mac)

	_, ok, err = rows[1].Attr(ctx, "name")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindNotFound(t *testing.T) {
	root, err := ParseString(page)
	require.NoError(t, err)

	_, err = root.Find(context.Background(), CSS(".missing"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFindInvalidSelector(t *testing.T) {
	root, err := ParseString(page)
	require.NoError(t, err)

	_, err = root.FindAll(context.Background(), CSS("div["))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestText(t *testing.T) {
	ctx := context.Background()
	root, err := ParseString(page)
	require.NoError(t, err)

	note, err := root.Find(ctx, CSS(".note"))
	require.NoError(t, err)

	text, err := note.Text(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)

	markup, err := note.Text(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Hello <b>world</b>", markup)
}

func TestPath(t *testing.T) {
	ctx := context.Background()
	root, err := ParseString(page)
	require.NoError(t, err)

	row, err := root.Find(ctx, ID("row"))
	require.NoError(t, err)

	state, err := row.Find(ctx, Path(Child("div", 1)))
	require.NoError(t, err)
	class, _, err := state.Attr(ctx, "class")
	require.NoError(t, err)
	assert.Equal(t, "state", class)

	span, err := row.Find(ctx, Path(Child("div", 2), Child("span", Last)))
	require.NoError(t, err)
	text, err := span.Text(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "b", text)

	_, err = row.Find(ctx, Path(Child("div", 3)))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelledContext(t *testing.T) {
	root, err := ParseString(page)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = root.FindAll(ctx, CSS("div"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocatorString(t *testing.T) {
	assert.Equal(t, "#online_device", ID("online_device").String())
	assert.Equal(t, ".dev-table-ip", CSS(".dev-table-ip").String())
	assert.Equal(t, "./div[2]/div[2]", Path(Child("div", 2), Child("div", 2)).String())
	assert.Equal(t, "./span[last()]", Path(Child("span", Last)).String())
}
