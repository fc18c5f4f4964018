package update

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/go-github/v52/github"

	"github.com/arjungandhi/datepick/pkg/version"
)

const (
	owner      = "arjungandhi"
	repo       = "datepick"
	binaryName = "datepick"
)

// ErrDevBuild is returned when the running binary has no release version
var ErrDevBuild = errors.New("development build, no release to compare against")

// Release is what the update command reports about the latest release
type Release struct {
	Version string
	URL     string
	Notes   string
}

// CheckForUpdate compares the running version with the latest release. The
// returned release is filled in even when no update is available.
func CheckForUpdate(ctx context.Context) (bool, *Release, error) {
	if version.Version == "dev" {
		return false, nil, ErrDevBuild
	}

	latest, err := GetLatestRelease(ctx)
	if err != nil {
		return false, nil, err
	}
	if latest.TagName == nil {
		return false, nil, errors.New("no tag name found in latest release")
	}

	r := &Release{
		Version: latest.GetTagName(),
		URL:     latest.GetHTMLURL(),
		Notes:   latest.GetBody(),
	}
	return IsNewer(version.Version, r.Version), r, nil
}

// IsNewer reports whether latest differs from current, ignoring a leading v
func IsNewer(current, latest string) bool {
	return strings.TrimPrefix(current, "v") != strings.TrimPrefix(latest, "v")
}

// GetLatestRelease gets the latest release from GitHub
func GetLatestRelease(ctx context.Context) (*github.RepositoryRelease, error) {
	client := github.NewClient(nil)
	release, _, err := client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	return release, nil
}

// AssetName is the release asset built for the given platform
func AssetName(goos, goarch string) string {
	name := fmt.Sprintf("%s-%s-%s", binaryName, goos, goarch)
	if goos == "windows" {
		name += ".exe"
	}
	return name
}

// UpdateBinary downloads and replaces the current binary with the latest version
func UpdateBinary(ctx context.Context) error {
	release, err := GetLatestRelease(ctx)
	if err != nil {
		return err
	}

	path, err := exec.LookPath(binaryName)
	if err != nil {
		return fmt.Errorf("could not find %s binary in PATH: %w", binaryName, err)
	}

	assetName := AssetName(runtime.GOOS, runtime.GOARCH)
	var downloadURL string
	for _, asset := range release.Assets {
		if asset.GetName() == assetName {
			downloadURL = asset.GetBrowserDownloadURL()
			break
		}
	}
	if downloadURL == "" {
		return fmt.Errorf("no binary found for platform %s-%s", runtime.GOOS, runtime.GOARCH)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build download request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download binary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download binary: HTTP %d", resp.StatusCode)
	}

	// The temporary file sits next to the binary so the final rename stays
	// on one filesystem.
	tmpFile, err := os.CreateTemp(filepath.Dir(path), binaryName+"-update-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write binary: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmpFile.Name(), 0755); err != nil {
		return fmt.Errorf("failed to make binary executable: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("failed to replace binary. Please ensure you have write permissions to %s: %w", path, err)
	}
	return nil
}
