// Package sanitizer cleans markup placed inside controls.
//
// Element content can be plain text, trusted-but-filtered HTML, or Markdown.
// [HTML] keeps inline formatting and links and drops scripts, event handlers
// and dangerous URLs. [Markdown] converts Markdown with goldmark and then runs
// the result through the same policy. [Text] strips all markup.
//
//	sanitizer.HTML(`<b>Hi</b><script>alert(1)</script>`) // "<b>Hi</b>"
//	out, err := sanitizer.Markdown("**Required** field")  // "<p><strong>Required</strong> field</p>\n"
package sanitizer
