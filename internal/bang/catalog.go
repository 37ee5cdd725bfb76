package bang

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-bangs/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog is the in-memory, read-only set of built-in bangs keyed by trigger.
// Lookups never touch the database.
type Catalog struct {
	bangs map[string]models.Bang
}

type catalogFile struct {
	Bangs []models.Bang `yaml:"bangs"`
}

// NewCatalog builds a catalog from already normalized bangs.
// Later entries replace earlier ones with the same trigger.
func NewCatalog(bangs ...models.Bang) *Catalog {
	c := &Catalog{bangs: make(map[string]models.Bang, len(bangs))}
	for _, b := range bangs {
		c.bangs[b.Trigger] = b
	}
	return c
}

// LoadCatalog parses the embedded catalog and, when overridePath is set,
// merges the entries of that YAML file on top of it.
func LoadCatalog(overridePath string) (*Catalog, error) {
	bangs, err := ParseCatalog(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}

	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadingCatalog, err)
		}

		overrides, err := ParseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", overridePath, err)
		}
		bangs = append(bangs, overrides...)
	}

	return NewCatalog(bangs...), nil
}

// ParseCatalog decodes catalog YAML and normalizes every entry:
// triggers are lower-cased with a "!" prefix and kind defaults to search.
func ParseCatalog(data []byte) ([]models.Bang, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	bangs := make([]models.Bang, 0, len(file.Bangs))
	for i, b := range file.Bangs {
		b.Trigger = NormalizeTrigger(b.Trigger)
		if b.Trigger == "" {
			return nil, fmt.Errorf("%w: entry %d has no trigger", ErrInvalidCatalog, i)
		}
		if IsReservedTrigger(b.Trigger) {
			return nil, fmt.Errorf("%w: %s", ErrReservedTrigger, b.Trigger)
		}
		if b.URLTemplate == "" && b.Domain == "" {
			return nil, fmt.Errorf("%w: %s has neither url nor domain", ErrInvalidCatalog, b.Trigger)
		}
		if b.Kind == "" {
			b.Kind = models.BangKindSearch
		}
		if b.Name == "" {
			b.Name = strings.TrimPrefix(b.Trigger, TriggerPrefix)
		}
		b.UserID = 0
		bangs = append(bangs, b)
	}

	return bangs, nil
}

// Lookup returns the built-in bang for trigger ("!g").
func (c *Catalog) Lookup(trigger string) (models.Bang, bool) {
	b, ok := c.bangs[strings.ToLower(trigger)]
	return b, ok
}

// Len returns the number of built-in bangs.
func (c *Catalog) Len() int {
	return len(c.bangs)
}
