// Package template compiles the maintenance page served by sstatic.
//
// A page is compiled once at startup: stylesheets and scripts are injected at
// the {{ css }} and {{ js }} placeholders, every inline <script> and <style>
// block is minified, and a SHA-256 digest of each block is collected so the
// Content-Security-Policy header can allow exactly those blocks. The compiled
// [Template] is immutable and safe for concurrent use; [Template.Render]
// fills in the per-request {{ host }} and {{ user-agent }} placeholders.
//
// Blocks are located with regular expressions, not an HTML parser. Only bare
// <script> and <style> tags (no attributes) are recognized, and markup such
// as a "</script>" inside a string literal will end a block early.
package template
