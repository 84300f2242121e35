package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// BindFlags registers the command-line flags on fs and returns the layer they
// populate once fs is parsed.
//
// Flags:
//
//	-h/--html            path to the served html file
//	-c/--css             css file, or folder of css files, to embed
//	-j/--js              js file, or folder of js files, to embed
//	--unsafe-inline      use 'unsafe-inline' instead of hashes in the CSP
//	-i/--host            address to bind to
//	-p/--port            port to listen on
//	-s/--static-path     route name the static content is served under
//	-f/--static-content  file or folder served on the static route
//	-m/--mime-types      path to a mime.types file
//	--config             YAML or JSON config file
func BindFlags(fs *pflag.FlagSet) *Layer {
	layer := new(Layer)

	fs.StringVarP(&layer.HTMLPath, "html", "h", "", "path to the served html file")
	fs.StringVarP(&layer.CSSPath, "css", "c", "", "path to the embedded css file, or folder containing the css files")
	fs.StringVarP(&layer.JSPath, "js", "j", "", "path to the embedded js file, or folder containing the js files")
	fs.BoolVar(&layer.UnsafeInline, "unsafe-inline", false, "use 'unsafe-inline' Content-Security-Policy instead of hashes")
	fs.StringVarP(&layer.Host, "host", "i", "", "address to bind to (default "+DefaultHost+")")
	fs.StringVarP(&layer.Port, "port", "p", "", fmt.Sprintf("port to listen on (default %d)", DefaultPort))
	fs.StringVarP(&layer.StaticPath, "static-path", "s", "", "route name for static content, e.g. \"assets\" for /assets/<file>")
	fs.StringVarP(&layer.StaticContent, "static-content", "f", "", "file or folder served on the static route (default "+DefaultStaticContent+")")
	fs.StringVarP(&layer.MimeTypesPath, "mime-types", "m", "", "path to a mime.types file (default "+DefaultMimeTypesPath+")")
	fs.StringVar(&layer.ConfigPath, "config", "", "path to a YAML or JSON config file")

	return layer
}

// ParseFlags parses args into a command-line layer.
func ParseFlags(args []string) (*Layer, error) {
	fs := pflag.NewFlagSet("sstatic", pflag.ContinueOnError)
	layer := BindFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return layer, nil
}
