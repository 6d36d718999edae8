// Package render draws a cover in the terminal. Every sequence is one line
// labelled S_i and every time step one cell; the cells owned by a selected
// pattern are highlighted.
package render
