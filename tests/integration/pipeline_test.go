package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dshills/docsplit-mcp/internal/batch"
	"github.com/dshills/docsplit-mcp/internal/splitter"
	"github.com/dshills/docsplit-mcp/pkg/types"
)

// PipelineTestSuite runs the full splitting pipeline over fixture
// documents of every supported shape.
type PipelineTestSuite struct {
	suite.Suite
	fixturesDir string
	registry    *splitter.Registry
	ctx         context.Context
}

// SetupSuite runs once before all tests
func (s *PipelineTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.registry = splitter.DefaultRegistry()

	wd, err := os.Getwd()
	s.Require().NoError(err)
	s.fixturesDir = filepath.Join(filepath.Dir(wd), "testdata", "fixtures")
}

func (s *PipelineTestSuite) fixture(name string) string {
	data, err := os.ReadFile(filepath.Join(s.fixturesDir, name))
	s.Require().NoError(err)
	return string(data)
}

func (s *PipelineTestSuite) config(size int) types.Config {
	cfg := types.DefaultConfig()
	cfg.ChunkSize = size
	cfg.ChunkOverlap = 0
	return cfg
}

func (s *PipelineTestSuite) TestMarkdownFixture() {
	content := s.fixture("guide.md")
	chunks, err := splitter.Split(s.registry, content, "md", s.config(600), nil)
	s.Require().NoError(err)
	s.Require().NotEmpty(chunks)

	headers := map[string]bool{}
	for _, c := range chunks {
		s.Equal("markdown", c.Metadata["splitter"])
		if h, ok := c.Metadata["header_text"].(string); ok {
			headers[h] = true
		}
	}
	s.True(headers["DocSplit User Guide"])
	s.True(headers["Choosing a Strategy"])
	s.True(headers["Delimiter Strategy"])
}

func (s *PipelineTestSuite) TestJSONFixture() {
	content := s.fixture("records.json")
	chunks, err := splitter.Split(s.registry, content, "json", s.config(500), nil)
	s.Require().NoError(err)
	s.Require().Len(chunks, 5)

	for i, c := range chunks {
		s.Equal("json", c.Metadata["splitter"])
		s.Equal(i, c.Metadata["array_index"])
		s.True(c.Complete)
	}
	s.Contains(chunks[0].Content, `"alpha"`)
	s.Contains(chunks[4].Content, `"epsilon"`)
}

func (s *PipelineTestSuite) TestGoFixture() {
	content := s.fixture("mathutil.go")
	chunks, err := splitter.Split(s.registry, content, "go", s.config(800), nil)
	s.Require().NoError(err)
	s.Require().NotEmpty(chunks)

	names := map[string]bool{}
	for _, c := range chunks {
		s.Equal("code", c.Metadata["splitter"])
		s.Contains(c.Content, "package mathutil")
		if n, ok := c.Metadata["unit_name"].(string); ok {
			names[n] = true
		}
	}
	s.True(names["Abs"])
	s.True(names["Factorial"])
	s.True(names["Clamp"])
	s.True(names["ErrNegative"])
}

func (s *PipelineTestSuite) TestProseFixture() {
	content := s.fixture("essay.txt")
	chunks, err := splitter.Split(s.registry, content, "txt", s.config(500), nil)
	s.Require().NoError(err)
	s.Require().NotEmpty(chunks)

	for _, c := range chunks {
		s.Equal("semantic", c.Metadata["splitter"])
		s.GreaterOrEqual(c.QualityScore, 0.0)
		s.LessOrEqual(c.QualityScore, 1.0)
	}
}

func (s *PipelineTestSuite) TestBatchOverFixtures() {
	names := []string{"guide.md", "records.json", "mathutil.go", "essay.txt"}
	tasks := make([]types.Task, 0, len(names))
	for _, name := range names {
		cfg := s.config(600)
		tasks = append(tasks, types.Task{
			ID:       name,
			Content:  s.fixture(name),
			FileType: strings.TrimPrefix(filepath.Ext(name), "."),
			Config:   cfg,
		})
	}

	proc := batch.New(s.registry, &batch.Config{Workers: 2})
	results := proc.ProcessBatch(s.ctx, tasks)
	s.Require().Len(results, len(tasks))

	byID := map[string]types.Result{}
	for _, res := range results {
		byID[res.TaskID] = res
	}
	for _, name := range names {
		res, ok := byID[name]
		s.Require().True(ok, "missing result for %s", name)
		s.True(res.Success, "task %s failed: %s", name, res.Error)
		s.NotEmpty(res.Chunks)
		for _, c := range res.Chunks {
			s.NoError(c.Validate(600))
		}
	}
}

func (s *PipelineTestSuite) TestHierarchicalOverProse() {
	cfg := s.config(300)
	cfg.Strategy = types.StrategyHierarchical
	cfg.ParentChunkSize = 900

	chunks, err := splitter.Split(s.registry, s.fixture("essay.txt"), "txt", cfg, nil)
	s.Require().NoError(err)
	s.Require().NotEmpty(chunks)

	parents := 0
	for _, c := range chunks {
		if c.Metadata["is_parent"] == true {
			parents++
		} else {
			s.NotEmpty(c.ParentID)
		}
	}
	s.Greater(parents, 0)
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}
