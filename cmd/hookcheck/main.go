// Command hookcheck reports hook calls that are made conditionally or inside
// loops.
//
//	go run github.com/plus3/hooklist/cmd/hookcheck ./...
package main

import (
	"github.com/plus3/hooklist/hooks/hookcheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(hookcheck.Analyzer)
}
