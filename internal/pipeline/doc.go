// Package pipeline implements the Markdown-to-HTML line transducer.
//
// The conversion runs in two layers:
//   - Line classification and block state (headings, unordered and ordered
//     lists, paragraphs), driven by Transducer
//   - Inline formatting of each text fragment (bold, emphasis, MD5 hashing of
//     [[...]] spans, c-stripping of ((...)) spans), driven by InlineFormatter
//
// Reading and writing files is handled by the root md2html package. This
// package never touches the filesystem and keeps no state between documents.
package pipeline
