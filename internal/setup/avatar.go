package setup

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/rig/internal/fsops"
	"github.com/quantmind-br/rig/internal/platform"
	"github.com/quantmind-br/rig/internal/ui"
	"github.com/spf13/afero"
	"golang.org/x/image/draw"
)

// avatarSize is the edge length of the installed account picture
const avatarSize = 512

// AvatarDest is where the account picture lands. Linux display managers
// read ~/.face; on macOS the picture has to be selected manually in
// System Settings, so it goes to a predictable spot under ~/Pictures.
func AvatarDest(host platform.OS, home string) string {
	if host == platform.OSUbuntu {
		return filepath.Join(home, ".face")
	}
	return filepath.Join(home, "Pictures", "rig-avatar.png")
}

// InstallAvatar decodes a PNG or JPEG, center-crops it to a square,
// scales it to 512x512, and writes it as PNG to dest.
func InstallAvatar(fs afero.Fs, src io.Reader, dest string) error {
	img, _, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("decode avatar image: %w", err)
	}

	scaled := scaleSquare(img, avatarSize)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return fmt.Errorf("encode avatar png: %w", err)
	}

	if err := fsops.WriteFileAtomic(fs, dest, buf.Bytes()); err != nil {
		return fmt.Errorf("install avatar: %w", err)
	}

	return nil
}

// scaleSquare center-crops img to its largest square and scales it to
// size x size.
func scaleSquare(img image.Image, size int) *image.RGBA {
	bounds := img.Bounds()
	edge := bounds.Dx()
	if bounds.Dy() < edge {
		edge = bounds.Dy()
	}

	crop := image.Rect(0, 0, edge, edge).
		Add(image.Pt(bounds.Min.X+(bounds.Dx()-edge)/2, bounds.Min.Y+(bounds.Dy()-edge)/2))

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Src, nil)
	return dst
}

// openAvatarSource opens a local path or fetches an http(s) URL
func openAvatarSource(fs afero.Fs, pathOrURL string) (io.ReadCloser, error) {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		resp, err := http.Get(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("fetch avatar: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch avatar: unexpected status %s", resp.Status)
		}
		return resp.Body, nil
	}

	f, err := fs.Open(pathOrURL)
	if err != nil {
		return nil, fmt.Errorf("open avatar file: %w", err)
	}
	return f, nil
}

// configureAvatar prompts for an image and installs it as the account
// picture
func (s *Steps) configureAvatar(_ context.Context) error {
	source, err := ui.InputPrompt("Avatar image (path or URL, empty to skip)", "", nil)
	if err != nil {
		return err
	}
	if strings.TrimSpace(source) == "" {
		ui.PrintInfo("avatar skipped")
		return nil
	}

	reader, err := openAvatarSource(s.fs, strings.TrimSpace(source))
	if err != nil {
		return err
	}
	defer reader.Close()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home dir: %w", err)
	}

	dest := AvatarDest(s.info.OS, home)
	if err := InstallAvatar(s.fs, reader, dest); err != nil {
		return err
	}

	ui.PrintSuccess("avatar installed at %s", dest)
	if s.info.OS == platform.OSMacOS {
		ui.PrintInfo("select it under System Settings > Users & Groups")
	}
	return nil
}
