// Package doctor probes the local environment for everything scb needs.
package doctor

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/scbundle/scb/internal/config"
)

// Check is one environment probe with a human-readable outcome.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// Run executes every probe. configPath may be empty when no scb.yaml is in
// play; the config check then reports the defaults in use.
func Run(configPath string) []Check {
	return []Check{
		checkConfig(configPath),
		checkPatchTool(),
		checkTempWrite(),
	}
}

func checkConfig(path string) Check {
	c := Check{Name: "configuration"}
	if path == "" {
		c.OK = true
		c.Detail = "no scb.yaml; built-in defaults in use"
		return c
	}
	cfg, err := config.Load(path)
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	c.OK = true
	c.Detail = fmt.Sprintf("%s: %d extension(s), %d rule(s)", path, len(cfg.Extensions), len(cfg.Rules))
	return c
}

func checkPatchTool() Check {
	c := Check{Name: "patch tool"}
	path, err := exec.LookPath("patch")
	if err != nil {
		c.Detail = "'patch' not found on PATH; 'scb patch' will not work"
		return c
	}
	c.OK = true
	c.Detail = path
	return c
}

func checkTempWrite() Check {
	c := Check{Name: "temp directory"}
	f, err := os.CreateTemp("", "scb-doctor-*")
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	c.OK = true
	c.Detail = os.TempDir()
	return c
}
