package config

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/adrg/xdg"

	"github.com/nao1215/taggregate/internal/tag"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "taggregate"

	// DefaultTagField is the metadata key that receives the tag list.
	DefaultTagField = "manuscript-figures"

	// DefaultTagSuffix is the type flag written after each identity in the
	// tag file. "m" keeps the entries valid tokens that are neither figure
	// definitions nor ordinary references.
	DefaultTagSuffix = "m"

	// DefaultFigureWise orders tags by their first figure definition, which is
	// what the numbering of figures in a manuscript follows.
	DefaultFigureWise = true
)

var suffixRegexp = regexp.MustCompile(`^` + tag.TypeClass + `$`)

// Config holds every option of a Taggregate run.
// It is read from a YAML file and then overridden by command line flags.
//
// Design decision: We use one flat struct for all commands rather than one
// struct per command. The commands share most options, and each command
// checks only the subset it needs through one of the Validate methods.
type Config struct {
	// SourceFiles lists the documents in processing order. The order defines
	// tag order across documents.
	SourceFiles []string `yaml:"source-files"`

	// TagFile is the path of the flat tag list.
	TagFile string `yaml:"tag-file"`

	// CompiledDirectory receives copies of the source documents with the tag
	// list injected into their metadata block.
	CompiledDirectory string `yaml:"compiled-directory"`

	// FigureWise orders tags by first figure definition instead of first
	// mention.
	FigureWise bool `yaml:"figure-wise"`

	// TagField is the metadata key the tag list is written to.
	TagField string `yaml:"tag-field"`

	// TagSuffix is the type flag of tag file entries.
	TagSuffix string `yaml:"tag-suffix"`

	// AllowEmptyRanges downgrades ranges without an implied member from an
	// error to a warning.
	AllowEmptyRanges bool `yaml:"allow-empty-ranges"`

	// Verbose enables debug logging. Set from the command line only.
	Verbose bool `yaml:"-"`

	// ConfigFilePath is the file the configuration was loaded from, if any.
	ConfigFilePath string `yaml:"-"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		FigureWise: DefaultFigureWise,
		TagField:   DefaultTagField,
		TagSuffix:  DefaultTagSuffix,
	}
}

// XDGConfigDir returns the XDG config directory for Taggregate.
// On Linux: ~/.config/taggregate
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ValidateSources checks that there is at least one source document and
// that no document is listed twice.
func (c *Config) ValidateSources() error {
	if len(c.SourceFiles) == 0 {
		return ErrNoSourceFiles
	}

	seen := make(map[string]struct{}, len(c.SourceFiles))
	for _, f := range c.SourceFiles {
		key := filepath.Clean(f)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateSourceFile, f)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Validate checks the options needed to aggregate tags.
// It returns the first violated rule.
func (c *Config) Validate() error {
	if err := c.ValidateSources(); err != nil {
		return err
	}

	if c.TagFile == "" {
		return ErrNoTagFile
	}

	return c.ValidateSuffix()
}

// ValidateSuffix checks that the tag suffix is a single type character, so
// that every line built from it is a valid token.
func (c *Config) ValidateSuffix() error {
	if !suffixRegexp.MatchString(c.TagSuffix) {
		return fmt.Errorf("%w: got %q", ErrInvalidTagSuffix, c.TagSuffix)
	}
	return nil
}

// ValidateCompile checks the options needed to inject tags into documents.
func (c *Config) ValidateCompile() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.CompiledDirectory == "" {
		return ErrNoCompiledDirectory
	}
	if c.TagField == "" {
		return ErrNoTagField
	}
	return nil
}

// CompiledPath returns where the compiled copy of source is written.
func (c *Config) CompiledPath(source string) string {
	return filepath.Join(c.CompiledDirectory, filepath.Base(source))
}
