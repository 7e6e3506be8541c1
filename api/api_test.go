package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swoga/huawei-exporter/config"
	"github.com/swoga/huawei-exporter/document"
)

const page = `<html><body><div id="online_device"></div></body></html>`

func TestGetPageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o600))

	node, err := GetPage(context.Background(), zerolog.Nop(), path)
	require.NoError(t, err)
	_, err = node.Find(context.Background(), document.ID("online_device"))
	assert.NoError(t, err)
}

func TestGetPageHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/devicemanagement.html" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	node, err := GetPage(context.Background(), zerolog.Nop(), server.URL+"/devicemanagement.html")
	require.NoError(t, err)
	_, err = node.Find(context.Background(), document.ID("online_device"))
	assert.NoError(t, err)

	_, err = GetPage(context.Background(), zerolog.Nop(), server.URL+"/other.html")
	assert.Error(t, err)
}

func TestGetPages(t *testing.T) {
	dir := t.TempDir()
	information := filepath.Join(dir, "information.html")
	require.NoError(t, os.WriteFile(information, []byte(page), 0o600))

	_, _, err := GetPages(context.Background(), zerolog.Nop(), config.Target{
		DeviceInformation: information,
		DeviceManagement:  filepath.Join(dir, "missing.html"),
	})
	assert.ErrorContains(t, err, "device management page")
}
