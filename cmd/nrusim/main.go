// Command nrusim replays synthetic memory traffic through NRU page replacement.
package main

import "github.com/djdv/go-nru/internal/cli"

func main() { cli.Execute() }
