package darklimb

import(
	"fmt"
	"io/ioutil"
	"log"

	"gopkg.in/yaml.v2"
)

// RenderConfig is passed explicitly to the figure renderer - there is
// deliberately no process-wide plotting state to configure.
type RenderConfig struct {
	Figures    bool // write before/after figures next to the output
	FalseColor bool // heat ramp instead of grayscale
	Histogram  bool // log an intensity histogram of the corrected frame
}

type Config struct {
	Verbosity int
	Render    RenderConfig
}

func NewConfig() Config {
	return Config{}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

// LoadConfig reads a YAML config file.
func LoadConfig(filename string) (Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}
	return newConfigFromYaml(contents)
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}
