// Package updater checks GitHub Releases for a newer desktop build and
// swaps the running binary.
package updater

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"golang.org/x/sync/singleflight"
)

const (
	assetPrefix = "proinvestix-desktop"
	// bounds a shared check once it no longer follows any caller's context
	checkTimeout = 30 * time.Second
)

// ReleaseInfo contains information about a GitHub release.
type ReleaseInfo struct {
	TagName string  `json:"tag_name"`
	Body    string  `json:"body"`
	HTMLURL string  `json:"html_url"`
	Assets  []Asset `json:"assets"`
}

// Asset represents a downloadable file in a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// UpdateResult contains the result of an update check.
type UpdateResult struct {
	Available      bool
	CurrentVersion string
	LatestVersion  string
	Notes          string
	ReleaseURL     string
	Release        *ReleaseInfo
}

type Checker struct {
	FeedURL        string
	CurrentVersion string
	Client         *http.Client

	group singleflight.Group
}

func NewChecker(feedURL, currentVersion string) *Checker {
	return &Checker{
		FeedURL:        feedURL,
		CurrentVersion: currentVersion,
		Client:         &http.Client{Timeout: 20 * time.Second},
	}
}

// Check queries the release feed. Concurrent calls share one request; a
// caller that cancels stops waiting without failing the others.
func (c *Checker) Check(ctx context.Context) (*UpdateResult, error) {
	ch := c.group.DoChan("check", func() (interface{}, error) {
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), checkTimeout)
		defer cancel()
		return c.check(sharedCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			log.Printf("[Updater] Joined in-flight update check")
		}
		return res.Val.(*UpdateResult), nil
	}
}

func (c *Checker) check(ctx context.Context) (*UpdateResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", assetPrefix+"/"+c.CurrentVersion)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &UpdateResult{CurrentVersion: c.CurrentVersion}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release feed returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read release: %w", err)
	}
	var release ReleaseInfo
	if err := sonic.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latestVersion := strings.TrimPrefix(release.TagName, "v")
	result := &UpdateResult{
		CurrentVersion: c.CurrentVersion,
		LatestVersion:  latestVersion,
		Notes:          release.Body,
		ReleaseURL:     release.HTMLURL,
		Release:        &release,
	}

	latest, err := ParseSemver(latestVersion)
	if err != nil {
		return nil, fmt.Errorf("parse latest version %q: %w", latestVersion, err)
	}
	current, err := ParseSemver(c.CurrentVersion)
	if err != nil {
		// "dev" and other unparseable builds are treated as older
		result.Available = true
		return result, nil
	}
	result.Available = current.LessThan(latest)
	return result, nil
}

// AssetName returns the release asset name for the running platform.
func AssetName() string {
	name := fmt.Sprintf("%s-%s-%s", assetPrefix, runtime.GOOS, runtime.GOARCH)
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return name
}

// FindAsset finds an asset by name in a release.
func FindAsset(release *ReleaseInfo, name string) *Asset {
	for i := range release.Assets {
		if release.Assets[i].Name == name {
			return &release.Assets[i]
		}
	}
	return nil
}

// DownloadAsset downloads a release asset to a temp file and returns the path.
func (c *Checker) DownloadAsset(ctx context.Context, asset *Asset) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.BrowserDownloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download returned %d", resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp("", assetPrefix+"-update-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	tmpFile.Close()

	if err := os.Chmod(tmpFile.Name(), 0755); err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("chmod temp file: %w", err)
	}
	return tmpFile.Name(), nil
}

// ReplaceBinary replaces the binary at destPath with newPath, restoring the
// old binary if the final rename fails.
func ReplaceBinary(destPath, newPath string) error {
	destPath, err := filepath.EvalSymlinks(destPath)
	if err != nil {
		return fmt.Errorf("resolve symlink: %w", err)
	}

	bakPath := destPath + ".bak"
	os.Remove(bakPath)

	if err := os.Rename(destPath, bakPath); err != nil {
		return fmt.Errorf("backup old binary: %w", err)
	}
	if err := os.Rename(newPath, destPath); err != nil {
		_ = os.Rename(bakPath, destPath)
		return fmt.Errorf("install new binary: %w", err)
	}

	// Windows keeps the running image locked; the backup is cleaned up on
	// the next successful update instead.
	if runtime.GOOS != "windows" {
		os.Remove(bakPath)
	}
	return nil
}

// Relaunch starts a detached copy of the binary at path.
func Relaunch(path string, args ...string) error {
	cmd := exec.Command(path, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("relaunch %s: %w", path, err)
	}
	return cmd.Process.Release()
}
