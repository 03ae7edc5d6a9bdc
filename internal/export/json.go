package export

import (
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/sells-group/offerdesk/internal/state"
)

// ExportJSON wraps the full snapshot under the namespace key, the same shape
// the persisted state uses. Admin screens download and re-upload this blob.
func ExportJSON(s state.State) ([]byte, error) {
	snapshot, err := state.Snapshot(s)
	if err != nil {
		return nil, err
	}
	doc := map[string]json.RawMessage{
		state.NamespaceKey: snapshot,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal document")
	}
	return data, nil
}

// ImportJSON restores a state from an exported document. The only validation
// is the presence of the namespace key; anything under it round-trips
// through the normal snapshot path.
func ImportJSON(data []byte) (state.State, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return state.Default(), eris.Wrap(err, "export: parse document")
	}
	snapshot, ok := doc[state.NamespaceKey]
	if !ok {
		return state.Default(), eris.Errorf("export: document missing %q key", state.NamespaceKey)
	}
	return state.Restore(snapshot)
}
