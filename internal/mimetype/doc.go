// Package mimetype maps file extensions to MIME types using a table in the
// format of /etc/mime.types.
package mimetype
