// Package scaffold holds the file tree of the generated chatbot project and
// writes it to disk. Templates are embedded under templates/: files ending in
// .tmpl are rendered with text/template, everything else is copied verbatim
// (JSX and Actions YAML both use "{{"). A "dot_" prefix on a path segment
// becomes "." in the output, so dotfiles never act on this repository.
package scaffold
