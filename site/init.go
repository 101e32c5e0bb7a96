package site

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
)

const starterConfig = `# Blogofile site configuration
site_name: Unnamed site
site_url: http://www.example.com
site_description:
author:
output_dir: _site
posts_per_page: 10
`

const starterIndex = `<!DOCTYPE html>
<html>
  <head><title>Unnamed site</title></head>
  <body>
    <h1>Welcome to your new blogofile site</h1>
    <p>Edit _config.yml and add posts under posts/ to get started.</p>
  </body>
</html>
`

// Init scaffolds a new site in srcDir. It refuses to touch a directory
// that already contains a config file.
var Init = func(srcDir string, w io.Writer) error {
	cfgPath := filepath.Join(srcDir, ConfigFileName)
	if _, err := stat(cfgPath); err == nil {
		return fmt.Errorf("%s already contains %s", srcDir, ConfigFileName)
	}
	if err := mkdirAll(filepath.Join(srcDir, "posts"), 0755); err != nil {
		return err
	}
	if err := writeFile(cfgPath, []byte(starterConfig), 0644); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(srcDir, "index.html"), []byte(starterIndex), 0644); err != nil {
		return err
	}
	slog.Info("site initialized", "dir", srcDir)
	fmt.Fprintf(w, "Initialized a new blogofile site in %s\n", srcDir)
	return nil
}
