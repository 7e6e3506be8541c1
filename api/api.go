package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/swoga/huawei-exporter/config"
	"github.com/swoga/huawei-exporter/document"
)

var (
	httpClient = &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 5,
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: true},
		},
		Timeout: time.Duration(5 * time.Minute),
	}
)

// GetPage loads a rendered page snapshot from a file or an http(s) URL.
func GetPage(ctx context.Context, log zerolog.Logger, source string) (document.Node, error) {
	u, err := url.Parse(source)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return request(ctx, log, source)
	}

	log.Debug().Str("file", source).Msg("read page")
	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return document.Parse(f)
}

func request(ctx context.Context, log zerolog.Logger, url string) (document.Node, error) {
	log.Debug().Str("url", url).Msg("send request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		log.Error().Int("status", res.StatusCode).Str("response", string(data)).Msg("error from page source")
		return nil, fmt.Errorf("non-200 response: %d", res.StatusCode)
	}

	return document.Parse(res.Body)
}

// GetPages loads both admin pages of a target.
func GetPages(ctx context.Context, log zerolog.Logger, target config.Target) (information document.Node, management document.Node, err error) {
	information, err = GetPage(ctx, log, target.DeviceInformation)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading device information page: %w", err)
	}
	management, err = GetPage(ctx, log, target.DeviceManagement)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading device management page: %w", err)
	}
	return information, management, nil
}
