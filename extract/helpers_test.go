package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swoga/huawei-exporter/document"
)

func loadPage(t *testing.T, name string) document.Node {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	page, err := document.Parse(f)
	require.NoError(t, err)
	return page
}

func parsePage(t *testing.T, html string) document.Node {
	t.Helper()
	page, err := document.ParseString(html)
	require.NoError(t, err)
	return page
}
