// Package version checks whether a newer vnkit release has been published.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/vnkit/vnkit/constant"
	"github.com/vnkit/vnkit/filesystem"
	"github.com/vnkit/vnkit/network"
	"github.com/vnkit/vnkit/util"
	"github.com/vnkit/vnkit/where"
)

// releasesURL is the GitHub endpoint describing the latest published release.
var releasesURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest retrieves the most recent released version from GitHub.
// The answer is kept for two days so that the check does not run on every invocation.
func Latest(ctx context.Context) (string, error) {
	if cached, expired, err := versionCacher.Get(); err == nil && !expired && cached != "" {
		return cached, nil
	}

	version, err := fetchLatest(ctx, releasesURL)
	if err != nil {
		return "", err
	}

	_ = versionCacher.Set(version)
	return version, nil
}

func fetchLatest(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github returned status code %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
