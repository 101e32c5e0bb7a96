package filter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FilterTestSuite struct {
	suite.Suite
}

func (s *FilterTestSuite) SetupTest() {
	instance = &registry{filters: map[string]Filter{}}
}

// List

func (s *FilterTestSuite) Test_List_PrintsMessage_WhenNoFiltersInstalled() {
	var out bytes.Buffer

	err := List(&out)

	s.NoError(err)
	s.Contains(out.String(), "no filters installed")
}

func (s *FilterTestSuite) Test_List_PrintsFiltersSortedByName() {
	Register(Filter{Name: "syntax_highlight", Description: "Highlights code blocks"})
	Register(Filter{Name: "markdown", Description: "Renders Markdown content"})
	var out bytes.Buffer

	err := List(&out)

	s.NoError(err)
	s.Contains(out.String(), "NAME")
	markdownIndex := strings.Index(out.String(), "markdown")
	highlightIndex := strings.Index(out.String(), "syntax_highlight")
	s.True(markdownIndex >= 0)
	s.True(highlightIndex > markdownIndex)
}

// Register

func (s *FilterTestSuite) Test_Register_ReplacesFilterWithSameName() {
	Register(Filter{Name: "markdown", Description: "old"})
	Register(Filter{Name: "markdown", Description: "new"})
	var out bytes.Buffer

	err := List(&out)

	s.NoError(err)
	s.Contains(out.String(), "new")
	s.NotContains(out.String(), "old")
}

// Suite

func TestFilterUnitTestSuite(t *testing.T) {
	suite.Run(t, new(FilterTestSuite))
}
