package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// Selection names the slice of the registry to generate: an API version
// and profile plus any extensions layered on top.
type Selection struct {
	API        string
	Version    string
	Profile    string
	Extensions []string
}

// Interface is the resolved set of enum and command names visible to a
// Selection.
type Interface struct {
	Enums    map[string]bool
	Commands map[string]bool
}

// Resolve replays the registry's feature blocks in version order up to
// and including the selected version, applying requires and then
// profile-scoped removes, and finally layers on the requested
// extensions. An unknown extension name is an error.
func (r *Registry) Resolve(sel Selection) (*Interface, error) {
	want, err := parseVersion(sel.Version)
	if err != nil {
		return nil, fmt.Errorf("registry: version %q: %w", sel.Version, err)
	}

	iface := &Interface{
		Enums:    make(map[string]bool),
		Commands: make(map[string]bool),
	}
	for _, f := range r.Features {
		if f.API != sel.API {
			continue
		}
		v, err := parseVersion(f.Number)
		if err != nil {
			return nil, fmt.Errorf("registry: feature %s: %w", f.Name, err)
		}
		if v > want {
			continue
		}
		for _, set := range f.Require {
			if set.Profile != "" && set.Profile != sel.Profile {
				continue
			}
			iface.add(set)
		}
		for _, set := range f.Remove {
			if set.Profile != "" && set.Profile != sel.Profile {
				continue
			}
			iface.remove(set)
		}
	}

	for _, name := range sel.Extensions {
		ext, ok := r.Extensions[name]
		if !ok {
			return nil, fmt.Errorf("registry: unknown extension %q", name)
		}
		if !extensionSupports(ext, sel) {
			return nil, fmt.Errorf("registry: extension %q does not support api %q", name, sel.API)
		}
		for _, set := range ext.Require {
			if set.Profile != "" && set.Profile != sel.Profile {
				continue
			}
			iface.add(set)
		}
	}
	return iface, nil
}

func (i *Interface) add(set InterfaceSet) {
	for _, e := range set.Enums {
		i.Enums[e] = true
	}
	for _, c := range set.Commands {
		i.Commands[c] = true
	}
}

func (i *Interface) remove(set InterfaceSet) {
	for _, e := range set.Enums {
		delete(i.Enums, e)
	}
	for _, c := range set.Commands {
		delete(i.Commands, c)
	}
}

func extensionSupports(ext Extension, sel Selection) bool {
	for _, api := range strings.Split(ext.Supported, "|") {
		if api == sel.API {
			return true
		}
		// Core-profile GL is listed as "glcore" in supported strings.
		if api == "glcore" && sel.API == "gl" && sel.Profile == "core" {
			return true
		}
	}
	return false
}

// parseVersion turns "4.6" into 406 for ordering.
func parseVersion(s string) (int, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return 0, fmt.Errorf("malformed version")
	}
	ma, err := strconv.Atoi(major)
	if err != nil {
		return 0, fmt.Errorf("malformed version")
	}
	mi, err := strconv.Atoi(minor)
	if err != nil {
		return 0, fmt.Errorf("malformed version")
	}
	return ma*100 + mi, nil
}
