package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/nao1215/taggregate/internal/config"
	"github.com/nao1215/taggregate/internal/header"
	tlog "github.com/nao1215/taggregate/internal/log"
	"github.com/nao1215/taggregate/internal/model"
	"github.com/nao1215/taggregate/internal/tag"
	"github.com/nao1215/taggregate/internal/tagfile"
)

const (
	docA = "---\ntitle: A\n---\n" +
		"Intro {#f:one:f} and later {#f:one:x}.\n" +
		"See {#f:two:f} - {#f:four:f}.\n"
	docB = "---\ntitle: B\n---\n" +
		"Only here: {#f:three:f}.\n"
)

// writeCorpus writes the two-document scenario into dir and returns a
// configuration pointing at it.
func writeCorpus(t *testing.T, dir string) *config.Config {
	t.Helper()

	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.md")
	if err := os.WriteFile(a, []byte(docA), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte(docB), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.NewConfig()
	cfg.SourceFiles = []string{a, b}
	cfg.TagFile = filepath.Join(dir, "tags.txt")
	cfg.CompiledDirectory = filepath.Join(dir, "compiled")
	return cfg
}

func TestAggregatePipeline(t *testing.T) {
	t.Parallel()

	cfg := writeCorpus(t, t.TempDir())
	agg := model.NewAggregation(cfg.FigureWise)

	p := NewAggregatePipeline(cfg, nil)
	if err := p.Execute(context.Background(), agg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := tagfile.Read(cfg.TagFile)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"{#f:one:m}", "{#f:two:m}", "{#f:three:m}", "{#f:four:m}"}
	if !slices.Equal(got, want) {
		t.Errorf("tag file = %v, want %v", got, want)
	}

	wantCanonical := []tag.Identity{"#f:one", "#f:two", "#f:four", "#f:three"}
	if !slices.Equal(agg.Canonical, wantCanonical) {
		t.Errorf("canonical = %v, want %v", agg.Canonical, wantCanonical)
	}
	if len(agg.Placed) != 1 || agg.Placed[0].Member != "#f:three" {
		t.Errorf("placed = %v", agg.Placed)
	}
	if agg.TagFile != cfg.TagFile {
		t.Errorf("TagFile = %q", agg.TagFile)
	}
	if len(agg.Documents) != 2 || !agg.Documents[0].HasHeader {
		t.Errorf("documents = %+v", agg.Documents)
	}

	steps := []string{"load", "scan", "resolve", "reconcile", "write_tag_file"}
	if !slices.Equal(agg.PerformedSteps, steps) {
		t.Errorf("performed = %v, want %v", agg.PerformedSteps, steps)
	}
}

func TestRunPipeline(t *testing.T) {
	t.Parallel()

	cfg := writeCorpus(t, t.TempDir())
	agg := model.NewAggregation(cfg.FigureWise)

	if err := NewRunPipeline(cfg, nil).Execute(context.Background(), agg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(agg.Compiled) != 2 {
		t.Fatalf("compiled = %v", agg.Compiled)
	}

	data, err := os.ReadFile(filepath.Join(cfg.CompiledDirectory, "b.md"))
	if err != nil {
		t.Fatal(err)
	}
	meta, err := header.Decode(string(data))
	if err != nil {
		t.Fatal(err)
	}
	if meta["title"] != "B" {
		t.Errorf("title = %v", meta["title"])
	}
	field, ok := meta[config.DefaultTagField].([]any)
	if !ok || len(field) != 4 || field[2] != "{#f:three:m}" {
		t.Errorf("%s = %v", config.DefaultTagField, meta[config.DefaultTagField])
	}
	if !strings.HasSuffix(string(data), "Only here: {#f:three:f}.\n") {
		t.Errorf("body changed: %q", data)
	}
}

func TestInsertPipelineKeepsLineEndings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeCorpus(t, dir)
	crlf := "---\r\ntitle: B\r\n---\r\nOnly here: {#f:three:f}.\r\n"
	if err := os.WriteFile(cfg.SourceFiles[1], []byte(crlf), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := tagfile.Write(cfg.TagFile, []string{"{#f:three:m}"}); err != nil {
		t.Fatal(err)
	}

	if err := NewInsertPipeline(cfg, nil).Execute(context.Background(), model.NewAggregation(true)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	windows, err := os.ReadFile(filepath.Join(cfg.CompiledDirectory, "b.md"))
	if err != nil {
		t.Fatal(err)
	}
	want := "---\r\nmanuscript-figures:\r\n  - '{#f:three:m}'\r\ntitle: B\r\n---\r\nOnly here: {#f:three:f}.\r\n"
	if string(windows) != want {
		t.Errorf("compiled b.md = %q, want %q", windows, want)
	}

	unix, err := os.ReadFile(filepath.Join(cfg.CompiledDirectory, "a.md"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(unix, []byte("\r")) {
		t.Errorf("compiled a.md gained carriage returns: %q", unix)
	}
}

func TestInjectStepLogsClippedHeader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeCorpus(t, dir)
	entries := make([]string, 0, 20)
	for _, name := range []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"} {
		entries = append(entries, "{#f:"+name+":m}")
	}
	if err := tagfile.Write(cfg.TagFile, entries); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	logger := tlog.NewLogger(&buf, true)
	if err := NewInsertPipeline(cfg, logger).Execute(context.Background(), model.NewAggregation(true)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var compiled []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "document compiled") {
			compiled = append(compiled, line)
		}
	}
	if len(compiled) != 2 {
		t.Fatalf("expected one record per document, got %d:\n%s", len(compiled), buf.String())
	}
	for _, line := range compiled {
		if !strings.Contains(line, `header="manuscript-figures:\\n`) {
			t.Errorf("header not logged on one line: %s", line)
		}
		if !strings.Contains(line, " chars)") {
			t.Errorf("long header not clipped: %s", line)
		}
	}
}

func TestInsertPipelineWithoutHeader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeCorpus(t, dir)
	if err := os.WriteFile(cfg.SourceFiles[1], []byte("no header {#f:three:f}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := tagfile.Write(cfg.TagFile, []string{"{#f:one:m}"}); err != nil {
		t.Fatal(err)
	}

	err := NewInsertPipeline(cfg, nil).Execute(context.Background(), model.NewAggregation(true))
	if !errors.Is(err, header.ErrNoHeader) {
		t.Errorf("expected ErrNoHeader, got %v", err)
	}
	if !errors.Is(err, tag.ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

func TestListPipelineSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	text := "Body {#f:a:f}.\n![Caption {#f:b:f}](b.png)\n"
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := config.NewConfig()
	cfg.SourceFiles = []string{path}

	tests := []struct {
		name   string
		source model.Source
		want   []tag.Identity
	}{
		{name: "all", source: model.SourceAll, want: []tag.Identity{"#f:a", "#f:b"}},
		{name: "text", source: model.SourceText, want: []tag.Identity{"#f:a"}},
		{name: "captions", source: model.SourceCaptions, want: []tag.Identity{"#f:b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			agg := model.NewAggregation(true)
			if err := NewListPipeline(cfg, tt.source, nil).Execute(context.Background(), agg); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(agg.Tags, tt.want) {
				t.Errorf("tags = %v, want %v", agg.Tags, tt.want)
			}
			if agg.Source != tt.source {
				t.Errorf("source = %q", agg.Source)
			}
		})
	}
}

func TestStepsRequireCorpus(t *testing.T) {
	t.Parallel()

	steps := []Step{
		NewScanStep(model.SourceAll),
		NewInjectStep("tags.txt", "field", filepath.Base, nil),
	}
	for _, s := range steps {
		if err := s.Do(context.Background(), model.NewAggregation(true)); !errors.Is(err, errNoCorpus) {
			t.Errorf("%s: expected errNoCorpus, got %v", s.Name(), err)
		}
	}
}
