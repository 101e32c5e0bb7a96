package site

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type InitTestSuite struct {
	suite.Suite
}

// Init

func (s *InitTestSuite) Test_Init_ScaffoldsNewSite() {
	dir := s.T().TempDir()
	var out bytes.Buffer

	err := Init(dir, &out)

	s.NoError(err)
	s.FileExists(filepath.Join(dir, ConfigFileName))
	s.FileExists(filepath.Join(dir, "index.html"))
	s.DirExists(filepath.Join(dir, "posts"))
	s.Contains(out.String(), "Initialized a new blogofile site")
}

func (s *InitTestSuite) Test_Init_ScaffoldedConfigIsLoadable() {
	dir := s.T().TempDir()
	s.Require().NoError(Init(dir, &bytes.Buffer{}))

	cfg, err := LoadConfig(dir)

	s.NoError(err)
	s.Equal("Unnamed site", cfg.SiteName)
	s.Equal("_site", cfg.OutputDir)
}

func (s *InitTestSuite) Test_Init_ReturnsError_WhenSiteAlreadyInitialized() {
	dir := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("site_name: existing\n"), 0644))

	err := Init(dir, &bytes.Buffer{})

	s.Error(err)
}

// Suite

func TestInitUnitTestSuite(t *testing.T) {
	suite.Run(t, new(InitTestSuite))
}
