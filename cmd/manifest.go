package cmd

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"

	"prettyname"
)

// tomlManifest represents a descriptor manifest as it is encoded in TOML.
type tomlManifest struct {
	Types []tomlType `toml:"types"`
}

// tomlType represents a single type entry of a descriptor manifest.
type tomlType struct {
	ID         uint64 `toml:"id"`
	Descriptor string `toml:"descriptor"`
}

// LoadManifest loads and validates a descriptor manifest.  It returns the
// descriptor source built from the manifest and the declared identities in
// ascending order.
func LoadManifest(path string) (prettyname.StaticSource, []prettyname.TypeID, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read manifest at `%s`: %s", path, err.Error())
	}

	manifest := &tomlManifest{}
	if err := toml.Unmarshal(buff, manifest); err != nil {
		return nil, nil, fmt.Errorf("error parsing manifest at `%s`: %s", path, err.Error())
	}

	if len(manifest.Types) == 0 {
		return nil, nil, errManifest("manifest declares no types")
	}

	source := prettyname.StaticSource{}
	ids := make([]prettyname.TypeID, 0, len(manifest.Types))

	for _, entry := range manifest.Types {
		if entry.ID == 0 {
			return nil, nil, errManifest("manifest entries must declare a non-zero id")
		}

		if entry.Descriptor == "" {
			return nil, nil, errManifest(fmt.Sprintf("type %d is missing a descriptor", entry.ID))
		}

		id := prettyname.TypeID(entry.ID)
		if _, ok := source[id]; ok {
			return nil, nil, errManifest(fmt.Sprintf("type %d is declared multiple times", entry.ID))
		}

		source[id] = entry.Descriptor
		ids = append(ids, id)
	}

	sortIDs(ids)

	return source, ids, nil
}
