// Package main provides the uml2java CLI for inspecting UML-to-Java type
// mapping resources.
package main

func main() {
	Execute()
}
