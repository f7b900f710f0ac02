package messages

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultLocale is the catalog shipped with the binary.
const DefaultLocale = "en"

// LoadCatalog parses the embedded PO catalog for a locale.
func LoadCatalog(locale string) (*gotext.Po, error) {
	filename := "catalog/" + locale + ".po"
	content, err := catalogFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog %s: %w", filename, err)
	}

	po := gotext.NewPo()
	po.Parse(content)
	return po, nil
}

// MustLoadCatalog parses a catalog, panicking on error.
// The default catalog is embedded, so failure means a broken build.
func MustLoadCatalog(locale string) *gotext.Po {
	po, err := LoadCatalog(locale)
	if err != nil {
		panic(err)
	}
	return po
}
