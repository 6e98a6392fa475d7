// Package commands wires the wordle CLI: play, serve and words.
package commands
