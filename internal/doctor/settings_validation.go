package doctor

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml"
	tomlv2 "github.com/pelletier/go-toml/v2"

	"github.com/paudelnirajan/zenco-companion/internal/settings"
)

var (
	settingsKeysOnce sync.Once
	settingsKeys     map[string]struct{}
)

// validateSettingsSyntax checks the file for TOML syntax errors. go-toml v1
// reports line and column positions, which is what we want to surface here.
func validateSettingsSyntax(data []byte) error {
	_, err := toml.LoadBytes(data)
	return err
}

// settingsUnknownKeys returns top-level keys that the current settings schema
// does not recognize, sorted for stable output. A file that fails to parse
// yields no unknown keys; syntax problems are reported separately.
func settingsUnknownKeys(data []byte) []string {
	var raw map[string]any
	if err := tomlv2.Unmarshal(data, &raw); err != nil {
		return nil
	}
	known := knownSettingsKeys()
	var unknown []string
	for key := range raw {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// knownSettingsKeys derives the allowed key set from the toml tags on
// settings.Settings, so the check never drifts from the schema.
func knownSettingsKeys() map[string]struct{} {
	settingsKeysOnce.Do(func() {
		settingsKeys = make(map[string]struct{})
		t := reflect.TypeOf(settings.Settings{})
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			tag := strings.TrimSpace(field.Tag.Get("toml"))
			if tag == "" || tag == "-" {
				continue
			}
			key := strings.Split(tag, ",")[0]
			if key != "" {
				settingsKeys[key] = struct{}{}
			}
		}
	})
	return settingsKeys
}
