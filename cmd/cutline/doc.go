// Command cutline manages the project library and runs the local editing API.
package main
