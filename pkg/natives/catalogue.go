package natives

import "wollokvalidate/pkg/runtime"

// Catalogue maps a module's fully-qualified name to its selector table,
// letting a driver resolve "which Go function backs Sound#play" without
// hard-coding module identity at every call site.
type Catalogue map[string]map[string]Native

// NewCatalogue builds the catalogue for every native-backed module this
// bridge implements: game and Sound (§4.6, §4.7).
func NewCatalogue() Catalogue {
	return Catalogue{
		runtime.FQNGame:  GameCatalogue(),
		runtime.FQNSound: SoundCatalogue(),
	}
}

// Lookup resolves the Native backing moduleFQN#selector.
func (c Catalogue) Lookup(moduleFQN, selector string) (Native, bool) {
	table, ok := c[moduleFQN]
	if !ok {
		return nil, false
	}
	n, ok := table[selector]
	return n, ok
}
