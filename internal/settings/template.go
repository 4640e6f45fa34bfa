package settings

import (
	_ "embed"
	"encoding/json"
)

// templateJSON is the fixed settings document this tool wants present in the
// user's configuration. It is compiled into the binary; the tool ships no
// externally configurable settings surface.
//
//go:embed template.json
var templateJSON []byte

// Template returns a fresh copy of the compiled-in settings template as a
// native JSON object. Each call decodes anew so callers can mutate the result
// without affecting later calls.
func Template() map[string]any {
	var doc map[string]any
	// The embedded document is validated by tests; a decode failure here means
	// a broken build, not a runtime condition.
	if err := json.Unmarshal(templateJSON, &doc); err != nil {
		panic("settings: embedded template is not valid JSON: " + err.Error())
	}
	return doc
}
