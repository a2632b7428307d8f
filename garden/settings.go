package garden

import (
	"errors"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

type Settings struct {
	DBPath     string `yaml:"dbPath"`
	StatePath  string `yaml:"statePath"`
	ListenAddr string `yaml:"listenAddr"`
}

var (
	DefaultSettings = Settings{
		DBPath:     "db.sqlite",
		StatePath:  "Inside_information.json",
		ListenAddr: ":8080",
	}
)

// LoadSettings reads the yaml settings file, writing one with defaults
// when it does not exist yet.
func LoadSettings(path string) (Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		data, err := yaml.Marshal(DefaultSettings)
		if err != nil {
			return Settings{}, err
		}

		if err := ioutil.WriteFile(path, data, 0644); err != nil {
			return Settings{}, err
		}

		return DefaultSettings, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}
