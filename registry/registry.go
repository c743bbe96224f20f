// Package registry parses the Khronos OpenGL XML registry and emits the
// generated portions of the gl package: the enum constants and the
// per-OS entry point tables. It is driven by glgen.toml through the mage
// generate target.
package registry

import (
	"encoding/xml"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Registry is the parsed gl.xml, reduced to what the generator needs.
type Registry struct {
	Enums      map[string]string
	Commands   map[string]Command
	Features   []Feature
	Extensions map[string]Extension
}

// Command is one C prototype from the <commands> block.
type Command struct {
	Name   string
	Ret    string
	Params []Param
}

// Param is one parameter with its cleaned C type, for example
// "const void *" or "GLsizei".
type Param struct {
	Name  string
	CType string
}

// Feature is one <feature> version block with its require/remove sets.
type Feature struct {
	API     string
	Name    string
	Number  string
	Require []InterfaceSet
	Remove  []InterfaceSet
}

// InterfaceSet is one <require> or <remove> block. An empty Profile
// applies to every profile.
type InterfaceSet struct {
	Profile  string
	Enums    []string
	Commands []string
}

// Extension is one <extension> block.
type Extension struct {
	Name      string
	Supported string
	Require   []InterfaceSet
}

type xmlRegistry struct {
	Enums []struct {
		Enum []struct {
			Name  string `xml:"name,attr"`
			Value string `xml:"value,attr"`
			API   string `xml:"api,attr"`
		} `xml:"enum"`
	} `xml:"enums"`
	Commands struct {
		Command []struct {
			Proto xmlProto   `xml:"proto"`
			Param []xmlProto `xml:"param"`
		} `xml:"command"`
	} `xml:"commands"`
	Feature []struct {
		API     string            `xml:"api,attr"`
		Name    string            `xml:"name,attr"`
		Number  string            `xml:"number,attr"`
		Require []xmlInterfaceSet `xml:"require"`
		Remove  []xmlInterfaceSet `xml:"remove"`
	} `xml:"feature"`
	Extensions struct {
		Extension []struct {
			Name      string            `xml:"name,attr"`
			Supported string            `xml:"supported,attr"`
			Require   []xmlInterfaceSet `xml:"require"`
		} `xml:"extension"`
	} `xml:"extensions"`
}

// xmlProto captures a <proto> or <param> element. The C type is mixed
// character data around the <ptype> and <name> children, so the raw
// inner XML is kept and cleaned up afterwards.
type xmlProto struct {
	Raw  string `xml:",innerxml"`
	Name string `xml:"name"`
}

type xmlInterfaceSet struct {
	Profile string `xml:"profile,attr"`
	Enum    []struct {
		Name string `xml:"name,attr"`
	} `xml:"enum"`
	Command []struct {
		Name string `xml:"name,attr"`
	} `xml:"command"`
}

var (
	nameElemRE = regexp.MustCompile(`<name>[^<]*</name>`)
	xmlTagRE   = regexp.MustCompile(`<[^>]+>`)
	wsRE       = regexp.MustCompile(`\s+`)
)

// ctype extracts the C type of a proto or param: everything but the
// <name> element, with markup stripped and whitespace collapsed.
func (p xmlProto) ctype() string {
	s := nameElemRE.ReplaceAllString(p.Raw, "")
	s = xmlTagRE.ReplaceAllString(s, " ")
	s = wsRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ParseFile reads and parses a gl.xml registry file.
func ParseFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	return Parse(data)
}

// Parse decodes a gl.xml document.
func Parse(data []byte) (*Registry, error) {
	var x xmlRegistry
	if err := xml.Unmarshal(data, &x); err != nil {
		return nil, fmt.Errorf("registry: decoding gl.xml: %w", err)
	}

	r := &Registry{
		Enums:      make(map[string]string),
		Commands:   make(map[string]Command),
		Extensions: make(map[string]Extension),
	}
	for _, group := range x.Enums {
		for _, e := range group.Enum {
			// A handful of names are redefined for gles with a
			// different value; the default (api-less) entry wins.
			if e.API != "" && e.API != "gl" {
				continue
			}
			r.Enums[e.Name] = cleanEnumValue(e.Value)
		}
	}
	for _, c := range x.Commands.Command {
		cmd := Command{Name: c.Proto.Name}
		if ret := c.Proto.ctype(); ret != "void" {
			cmd.Ret = ret
		}
		for _, p := range c.Param {
			cmd.Params = append(cmd.Params, Param{Name: p.Name, CType: p.ctype()})
		}
		r.Commands[cmd.Name] = cmd
	}
	for _, f := range x.Feature {
		r.Features = append(r.Features, Feature{
			API:     f.API,
			Name:    f.Name,
			Number:  f.Number,
			Require: convertSets(f.Require),
			Remove:  convertSets(f.Remove),
		})
	}
	for _, e := range x.Extensions.Extension {
		r.Extensions[e.Name] = Extension{
			Name:      e.Name,
			Supported: e.Supported,
			Require:   convertSets(e.Require),
		}
	}
	return r, nil
}

func convertSets(in []xmlInterfaceSet) []InterfaceSet {
	out := make([]InterfaceSet, 0, len(in))
	for _, s := range in {
		set := InterfaceSet{Profile: s.Profile}
		for _, e := range s.Enum {
			set.Enums = append(set.Enums, e.Name)
		}
		for _, c := range s.Command {
			set.Commands = append(set.Commands, c.Name)
		}
		out = append(out, set)
	}
	return out
}

// cleanEnumValue strips C integer suffixes (GL_TIMEOUT_IGNORED is
// 0xFFFFFFFFFFFFFFFFull in the registry) so the value is a Go literal.
func cleanEnumValue(v string) string {
	return strings.TrimRight(v, "uUlL")
}
