package batch

import "strings"

// DefaultMarker identifies graph-description files by name.
const DefaultMarker = ".gv"

// Source is a graph-description file discovered in the target directory.
type Source struct {
	Name   string // file name as listed
	Base   string // text before the first occurrence of the marker
	Output string // Base plus the image extension
}

// OutputName derives the image file name for name. The split point is the
// first occurrence of marker, so "a.gv.gv" becomes "a.png" for format png.
// ok is false when name does not contain marker.
func OutputName(name, marker, format string) (out string, ok bool) {
	src, ok := newSource(name, marker, format)
	return src.Output, ok
}

func newSource(name, marker, format string) (Source, bool) {
	if marker == "" {
		return Source{}, false
	}
	i := strings.Index(name, marker)
	if i < 0 {
		return Source{}, false
	}
	return Source{
		Name:   name,
		Base:   name[:i],
		Output: name[:i] + "." + format,
	}, true
}
