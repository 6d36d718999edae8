// Package common holds the run configuration shared by the commands and the
// logger factory every engine package logs through.
package common
