// Package cli is the entry point of neuralsynth. It scans the command line against a fixed flag table,
// serves help and version requests and hands the parsed options to the collaborator.
package cli
