// Package highlight holds the highlight rules of a session
// and compiles them into a layered stylesheet.
//
// Highlight rules are kept in a priority-ordered [rulelist.List].
// A rule earlier in the list takes precedence over rules after it:
// [Compile] declares cascade layers in reverse list order,
// so the first rule's layer is declared last and wins.
//
// Selectors target class names.
// The rendered markup must use the same class names as the rule names
// for highlighting to take effect.
package highlight
