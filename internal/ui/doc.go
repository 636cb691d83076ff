// Package ui provides semantic text formatting for sealkit's CLI output.
//
// Formatters render content by kind rather than by color, so commands never
// pick colors themselves:
//
//	ui.Code.Sprint("sealkit secrets seal secret.yaml")
//	ui.Path.Sprint("secret-sealed.yaml")
//	ui.Highlight.Sprint("prod/db")
//	ui.Muted.Sprint("dry run")
//
// Spinner final messages are built with SuccessLine, ErrorLine and
// WarningLine, which prefix the status symbol and terminate the line.
//
// Colors are disabled when NO_COLOR is set or the terminal doesn't support
// them. Without color, Code gets `backticks`, Highlight 'single quotes' and
// Muted (parentheses); other formatters are left undecorated.
package ui
