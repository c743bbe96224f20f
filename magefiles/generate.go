//go:build mage

package main

import (
	"os"

	"github.com/spaghettifunk/opal/registry"
)

const registryURL = "https://registry.khronos.org/OpenGL/xml/gl.xml"

// Regenerates the gl package from the Khronos registry per glgen.toml,
// downloading gl.xml on first use.
func Generate() error {
	if _, err := os.Stat("gl.xml"); os.IsNotExist(err) {
		if _, err := executeCmd("curl", withArgs("-fsSL", "-o", "gl.xml", registryURL), withStream()); err != nil {
			return err
		}
	}
	if err := registry.Generate("glgen.toml"); err != nil {
		return err
	}
	if _, err := executeCmd("gofmt", withArgs("-w", "gl")); err != nil {
		return err
	}
	return nil
}
