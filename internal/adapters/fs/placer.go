package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Placer = (*Placer)(nil)

// Placer lays out planned artifacts as <dst>/<label>/<NNN>_<digest>/<name>.
type Placer struct{}

// NewPlacer creates a new Placer.
func NewPlacer() *Placer {
	return &Placer{}
}

// Place moves or copies every artifact of plan into its group folder under dst.
// Placements are returned in artifact order.
func (p *Placer) Place(ctx context.Context, plan *domain.Plan, dst string, mode ports.PlaceMode) ([]domain.Placement, error) {
	if err := os.MkdirAll(dst, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPlacementFailed.Error()), "path", dst)
	}

	placements := make([]domain.Placement, 0, len(plan.Artifacts))
	for i := range plan.Artifacts {
		if err := ctx.Err(); err != nil {
			return placements, err
		}

		a := &plan.Artifacts[i]
		group := a.GroupName()
		dir := filepath.Join(dst, plan.Label(a), group)
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return placements, zerr.With(zerr.Wrap(err, domain.ErrPlacementFailed.Error()), "path", dir)
		}

		dest, err := uniquePath(filepath.Join(dir, a.Name))
		if err != nil {
			return placements, zerr.With(zerr.Wrap(err, domain.ErrPlacementFailed.Error()), "path", dir)
		}

		if mode == ports.PlaceCopy {
			err = copyFile(a.Path, dest)
		} else {
			err = moveFile(a.Path, dest)
		}
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrPlacementFailed.Error()), "source", a.Path)
			return placements, zerr.With(err, "destination", dest)
		}

		placements = append(placements, domain.Placement{Index: i, Destination: dest, GroupName: group})
	}
	return placements, nil
}

// Write stores data at path through a temporary file in the same folder, replacing any
// existing file.
func (p *Placer) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPlacementFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPlacementFailed.Error()), "path", dir)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, domain.ErrPlacementFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, domain.ErrPlacementFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, domain.ErrPlacementFailed.Error()), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, domain.ErrPlacementFailed.Error()), "path", path)
	}
	return nil
}

// uniquePath returns path, or the first of name_1.ext, name_2.ext, ... that does not exist.
func uniquePath(path string) (string, error) {
	if _, err := os.Lstat(path); errors.Is(err, os.ErrNotExist) {
		return path, nil
	} else if err != nil {
		return "", err
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := os.Lstat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		} else if err != nil {
			return "", err
		}
	}
}

func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	// Rename fails across devices.
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src) //nolint:gosec // Source paths come from the scan
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm()) //nolint:gosec // Destination is built from the plan
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
