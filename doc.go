// Package md2html converts a small subset of Markdown to HTML, line by line.
//
// # Quick Start
//
//	html := md2html.ConvertString("# Hello\n\n- one\n- two\n")
//	// <h1>Hello</h1>
//	// <ul>
//	// <li>one</li>
//	// <li>two</li>
//	// </ul>
//
// To convert files, use ConvertFile, which reads the whole input, converts it
// and replaces the output file in one step:
//
//	res, err := md2html.ConvertFile("README.md", "README.html")
//
// # Supported Syntax
//
// Block syntax, one construct per line:
//
//	# Heading          <h1>..</h1>, one <hN> per leading '#' (not capped at 6)
//	- item             <ul><li>..</li></ul>
//	* item             <ol><li>..</li></ol>
//	plain text         <p>..</p>, consecutive lines separated by <br/>
//	(blank line)       closes the current list or paragraph
//
// Inline syntax, applied to heading, list item and paragraph text in this order:
//
//	**bold**           <b>bold</b>
//	__emphasis__       <em>emphasis</em>
//	[[text]]           lowercase hex MD5 digest of text
//	((text))           text with every 'c' and 'C' removed
//
// Nested lists, links, images, code blocks, tables and blockquotes are not
// supported. Text is not HTML-escaped.
package md2html
