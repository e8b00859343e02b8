// Package process terminates the headless browser launched for PDF output
// together with the renderer and GPU helpers it forks.
package process
