package site

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
)

// Builder publishes a site's source tree into its output directory.
type Builder interface {
	Build(w io.Writer) error
}

type builder struct {
	cfg    Config
	srcDir string
}

var NewBuilder = func(cfg Config, srcDir string) Builder {
	return &builder{cfg: cfg, srcDir: srcDir}
}

// Build copies every regular file from the source directory into the output
// directory. Names starting with an underscore or a dot are private to the
// site and are skipped, which also keeps the output directory itself out of
// the walk.
func (m *builder) Build(w io.Writer) error {
	if _, err := stat(filepath.Join(m.srcDir, ConfigFileName)); err != nil {
		return fmt.Errorf("%s does not look like a blogofile site (no %s found)", m.srcDir, ConfigFileName)
	}
	outDir := filepath.Join(m.srcDir, m.cfg.OutputDir)
	count := 0
	err := filepath.WalkDir(m.srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(m.srcDir, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}
		// Never walk into the output directory, or a build would copy it
		// into itself.
		if rel == m.cfg.OutputDir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		dst := filepath.Join(outDir, rel)
		if d.IsDir() {
			return mkdirAll(dst, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := readFile(path)
		if err != nil {
			return err
		}
		if err := mkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err := writeFile(dst, data, 0644); err != nil {
			return err
		}
		slog.Debug("published file", "src", path, "dst", dst)
		count++
		return nil
	})
	if err != nil {
		return err
	}
	slog.Info("site built", "files", count, "output", outDir)
	fmt.Fprintf(w, "Wrote %d files to %s\n", count, outDir)
	return nil
}
