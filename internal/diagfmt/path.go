package diagfmt

import (
	"os"
	"path/filepath"

	"quoter/internal/source"
)

// formatPath выводит путь файла согласно режиму.
func formatPath(f *source.File, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(filepath.FromSlash(f.Path)); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path

	case PathModeRelative:
		if baseDir == "" {
			// Если базовая директория не указана, используем текущую
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		abs, err := filepath.Abs(filepath.FromSlash(f.Path))
		if err != nil {
			return f.Path
		}
		if base, err := filepath.Abs(baseDir); err == nil {
			baseDir = base
		}
		if rel, err := filepath.Rel(baseDir, abs); err == nil {
			return filepath.ToSlash(rel)
		}
		return f.Path

	case PathModeBasename:
		return source.BaseName(f.Path)

	case PathModeAuto:
		// короткий или относительный путь — как есть, иначе basename
		if len(f.Path) < 40 || !filepath.IsAbs(filepath.FromSlash(f.Path)) {
			return f.Path
		}
		return source.BaseName(f.Path)

	default:
		return f.Path
	}
}

// lookupFile returns nil for spans without a file, see source.NoFile.
func lookupFile(fs *source.FileSet, id source.FileID) *source.File {
	if fs == nil || id == source.NoFile || int(id) >= fs.Len() {
		return nil
	}
	return fs.Get(id)
}
