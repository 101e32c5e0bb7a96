package site

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type InfoTestSuite struct {
	suite.Suite
}

// Info

func (s *InfoTestSuite) Test_Info_PrintsVersionAndSiteDetails() {
	dir := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("site_name: My Fancy Blog\n"), 0644))
	cfg, err := LoadConfig(dir)
	s.Require().NoError(err)
	var out bytes.Buffer

	err = Info(cfg, dir, "0.8.0", &out)

	s.NoError(err)
	s.Contains(out.String(), "0.8.0")
	s.Contains(out.String(), dir)
	s.Contains(out.String(), "My Fancy Blog")
}

func (s *InfoTestSuite) Test_Info_ReportsNonSiteDirectory() {
	dir := s.T().TempDir()
	var out bytes.Buffer

	err := Info(DefaultConfig(), dir, "0.8.0", &out)

	s.NoError(err)
	s.Contains(out.String(), "is not a blogofile site")
}

// Suite

func TestInfoUnitTestSuite(t *testing.T) {
	suite.Run(t, new(InfoTestSuite))
}
