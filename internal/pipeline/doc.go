// Package pipeline holds the HTML post-processing stages applied around the
// rendered compatibility table:
//   - Markdown rendering of cell text via Goldmark (opt-in)
//   - CSS injection into the page head
//   - rewriting of relative image and link paths to file:// URLs, so a page
//     rendered from a temporary file still finds images next to the source
package pipeline
