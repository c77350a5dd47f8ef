package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zucenko/puckduck/level"
	"github.com/zucenko/puckduck/model"
)

var httpClient = &http.Client{Timeout: 5 * time.Second}

// FetchRemote loads a level from a catalog served at baseURL.
func FetchRemote(baseURL, name string) (*model.Level, error) {
	u := strings.TrimRight(baseURL, "/") + URI_LEVELS + "/" + url.PathEscape(name)
	resp, err := httpClient.Get(u)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case HTTP_SUCCESS:
		return level.Read(resp.Body)
	case HTTP_NOT_FOUND:
		return nil, fmt.Errorf("fetch %s: %w", name, ErrLevelNotFound)
	default:
		return nil, fmt.Errorf("fetch %s: status %d", name, resp.StatusCode)
	}
}
