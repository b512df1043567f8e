package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// Changes to defaults must be intentional; this test fails otherwise.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default FigureWise is true", func(t *testing.T) {
		t.Parallel()
		if !cfg.FigureWise {
			t.Error("expected FigureWise to be true")
		}
	})

	t.Run("default TagField is manuscript-figures", func(t *testing.T) {
		t.Parallel()
		if cfg.TagField != "manuscript-figures" {
			t.Errorf("expected TagField to be 'manuscript-figures', got '%s'", cfg.TagField)
		}
	})

	t.Run("default TagSuffix is m", func(t *testing.T) {
		t.Parallel()
		if cfg.TagSuffix != "m" {
			t.Errorf("expected TagSuffix to be 'm', got '%s'", cfg.TagSuffix)
		}
	})

	t.Run("default AllowEmptyRanges is false", func(t *testing.T) {
		t.Parallel()
		if cfg.AllowEmptyRanges {
			t.Error("expected AllowEmptyRanges to be false")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	// validConfig returns a minimal valid configuration.
	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.SourceFiles = []string{"a.md", "b.md"}
		cfg.TagFile = "tags.txt"
		cfg.CompiledDirectory = "compiled"
		return cfg
	}

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		if err := validConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if err := validConfig().ValidateCompile(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		compile bool
		want    error
	}{
		{
			name:   "nil source files returns ErrNoSourceFiles",
			mutate: func(c *Config) { c.SourceFiles = nil },
			want:   ErrNoSourceFiles,
		},
		{
			name:   "duplicate source file returns ErrDuplicateSourceFile",
			mutate: func(c *Config) { c.SourceFiles = []string{"a.md", "./a.md"} },
			want:   ErrDuplicateSourceFile,
		},
		{
			name:   "empty tag file returns ErrNoTagFile",
			mutate: func(c *Config) { c.TagFile = "" },
			want:   ErrNoTagFile,
		},
		{
			name:   "long suffix returns ErrInvalidTagSuffix",
			mutate: func(c *Config) { c.TagSuffix = "mm" },
			want:   ErrInvalidTagSuffix,
		},
		{
			name:   "punctuation suffix returns ErrInvalidTagSuffix",
			mutate: func(c *Config) { c.TagSuffix = "}" },
			want:   ErrInvalidTagSuffix,
		},
		{
			name:    "missing compiled directory returns ErrNoCompiledDirectory",
			mutate:  func(c *Config) { c.CompiledDirectory = "" },
			compile: true,
			want:    ErrNoCompiledDirectory,
		},
		{
			name:    "empty tag field returns ErrNoTagField",
			mutate:  func(c *Config) { c.TagField = "" },
			compile: true,
			want:    ErrNoTagField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			var err error
			if tt.compile {
				err = cfg.ValidateCompile()
			} else {
				err = cfg.Validate()
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected error to wrap ErrInvalidConfig, got %v", err)
			}
		})
	}

	t.Run("sources alone are enough for listing", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.SourceFiles = []string{"a.md"}
		if err := cfg.ValidateSources(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if err := cfg.Validate(); !errors.Is(err, ErrNoTagFile) {
			t.Errorf("expected ErrNoTagFile, got %v", err)
		}
	})

	t.Run("compiled directory is not needed for aggregation", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.CompiledDirectory = ""
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

func TestValidateSuffix(t *testing.T) {
	t.Parallel()

	// Sources and tag file are not needed to print tag lines.
	cfg := &Config{TagSuffix: "mm"}
	if err := cfg.ValidateSuffix(); !errors.Is(err, ErrInvalidTagSuffix) {
		t.Errorf("expected ErrInvalidTagSuffix, got %v", err)
	}

	for _, suffix := range []string{"m", "7", "é"} {
		cfg.TagSuffix = suffix
		if err := cfg.ValidateSuffix(); err != nil {
			t.Errorf("suffix %q: unexpected error: %v", suffix, err)
		}
	}
}

func TestCompiledPath(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.CompiledDirectory = "out"

	got := cfg.CompiledPath(filepath.Join("chapters", "intro.md"))
	if got != filepath.Join("out", "intro.md") {
		t.Errorf("unexpected compiled path %q", got)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads keys and resolves paths", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		content := `source-files:
  - a.md
  - /abs/b.md
tag-file: tags.txt
compiled-directory: compiled
figure-wise: false
tag-field: figures
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantSources := []string{filepath.Join(dir, "a.md"), "/abs/b.md"}
		if !slices.Equal(cfg.SourceFiles, wantSources) {
			t.Errorf("SourceFiles = %v, want %v", cfg.SourceFiles, wantSources)
		}
		if cfg.TagFile != filepath.Join(dir, "tags.txt") {
			t.Errorf("unexpected TagFile %q", cfg.TagFile)
		}
		if cfg.CompiledDirectory != filepath.Join(dir, "compiled") {
			t.Errorf("unexpected CompiledDirectory %q", cfg.CompiledDirectory)
		}
		if cfg.FigureWise {
			t.Error("expected FigureWise false from file")
		}
		if cfg.TagField != "figures" {
			t.Errorf("unexpected TagField %q", cfg.TagField)
		}
		if cfg.TagSuffix != DefaultTagSuffix {
			t.Errorf("expected default TagSuffix, got %q", cfg.TagSuffix)
		}
		if cfg.ConfigFilePath != path {
			t.Errorf("unexpected ConfigFilePath %q", cfg.ConfigFilePath)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns ErrInvalidConfig", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yml")
		if err := os.WriteFile(path, []byte("source-files: [a.md\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		_, err := LoadConfigFile(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("wrong type returns ErrInvalidConfig", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("source-files: 3\n"))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yml")
		if err := os.WriteFile(path, []byte("tag-file: t.txt\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yml")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})
}

func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	if filepath.Base(XDGConfigDir()) != AppName {
		t.Errorf("expected XDG dir to end with %q, got %q", AppName, XDGConfigDir())
	}
}
