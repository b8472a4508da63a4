package gamedata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/luckysymbol/internal/selection"
)

// Well-known asset keys.
const (
	KeyBlank   = "blank"
	KeyButton  = "button"
	KeyMystery = "mystery"

	symbolPrefix = "sym"
)

// SymbolKey returns the asset key showing choice c.
func SymbolKey(c selection.Choice) string {
	return fmt.Sprintf("%s%d", symbolPrefix, c)
}

// AssetRegistry holds loaded asset definitions keyed by ID.
type AssetRegistry struct {
	assets map[string]*AssetDef
	all    []AssetDef
}

// NewAssetRegistry creates a registry from loaded asset definitions.
func NewAssetRegistry(assets []AssetDef) *AssetRegistry {
	registry := &AssetRegistry{
		assets: make(map[string]*AssetDef, len(assets)),
		all:    assets,
	}
	for i := range assets {
		registry.assets[assets[i].ID] = &assets[i]
	}
	return registry
}

// LoadAssetRegistry loads and creates a registry from the embedded assets.json.
func LoadAssetRegistry() (*AssetRegistry, error) {
	assets, err := LoadAssets()
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, errors.New("no assets loaded from assets.json")
	}

	registry := NewAssetRegistry(assets)
	for _, key := range []string{KeyBlank, KeyButton, KeyMystery} {
		if registry.GetByID(key) == nil {
			return nil, fmt.Errorf("assets.json is missing %q", key)
		}
	}
	return registry, nil
}

// MustLoadAssetRegistry loads a registry, panicking on error.
func MustLoadAssetRegistry() *AssetRegistry {
	registry, err := LoadAssetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the asset with the given key, or nil if not found.
func (r *AssetRegistry) GetByID(id string) *AssetDef {
	return r.assets[id]
}

// Symbol returns the asset for choice c, or nil.
func (r *AssetRegistry) Symbol(c selection.Choice) *AssetDef {
	return r.assets[SymbolKey(c)]
}

// SymbolCount returns how many consecutive symbols sym1..symN exist.
func (r *AssetRegistry) SymbolCount() int {
	n := 0
	for r.Symbol(selection.Choice(n+1)) != nil {
		n++
	}
	return n
}

// All returns all asset definitions.
func (r *AssetRegistry) All() []AssetDef {
	return r.all
}

// Count returns the number of assets in the registry.
func (r *AssetRegistry) Count() int {
	return len(r.all)
}

// IsSymbol reports whether key names a choice symbol.
func IsSymbol(key string) bool {
	return strings.HasPrefix(key, symbolPrefix)
}
