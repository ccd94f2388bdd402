package swagger

import "regexp"

// PathArgument is one placeholder extracted from a route path: its name
// and the path converter type it was declared with.
type PathArgument struct {
	Name string
	Type string
}

// pathArgRegexp matches route placeholders of the form <name> or
// <type:name>.
var pathArgRegexp = regexp.MustCompile(`<(?:([^:<>]+):)?([^<>]+)>`)

// FormatPath converts a route path with embedded <type:name> placeholders
// to swagger form with {name} placeholders, and extracts the arguments in
// order of appearance. A placeholder without a type annotation yields type
// "string". Argument names are not deduplicated; a repeated name appears
// once per occurrence.
func FormatPath(path string) (string, []PathArgument) {
	var args []PathArgument

	formatted := pathArgRegexp.ReplaceAllStringFunc(path, func(match string) string {
		groups := pathArgRegexp.FindStringSubmatch(match)
		typ := groups[1]
		if typ == "" {
			typ = "string"
		}
		args = append(args, PathArgument{Name: groups[2], Type: typ})
		return "{" + groups[2] + "}"
	})

	return formatted, args
}
