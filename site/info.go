package site

import (
	"fmt"
	"io"
	"path/filepath"
)

// Info writes a short description of the program and the site in srcDir.
var Info = func(cfg Config, srcDir, version string, w io.Writer) error {
	fmt.Fprintf(w, "blogofile version: %s\n", version)
	fmt.Fprintf(w, "source directory:  %s\n", srcDir)
	if _, err := stat(filepath.Join(srcDir, ConfigFileName)); err != nil {
		fmt.Fprintf(w, "%s is not a blogofile site (no %s found)\n", srcDir, ConfigFileName)
		return nil
	}
	fmt.Fprintf(w, "site name:         %s\n", cfg.SiteName)
	fmt.Fprintf(w, "site url:          %s\n", cfg.SiteURL)
	fmt.Fprintf(w, "output directory:  %s\n", filepath.Join(srcDir, cfg.OutputDir))
	fmt.Fprintf(w, "posts per page:    %d\n", cfg.PostsPerPage)
	return nil
}
