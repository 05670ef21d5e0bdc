package main

import (
	"fmt"
	. "github.com/dave/jennifer/jen"
	"log"
	"os"
)

func main() {
	if len(os.Args) != 4 {
		panic("Only 3 arguments supported,0: Build version 1:Commit 2:Output file")
	}

	buildVersion := os.Args[1]
	commit := os.Args[2]
	outputFile := os.Args[3]

	f := NewFile("env")
	f.HeaderComment("auto-generated with gen_version.go code")

	f.Func().Id("init").Params().Block(
		If(Id("BuildVersion").Op("==").Lit("")).Block(
			Id("BuildVersion").Op("=").Lit(buildVersion),
		),
		If(Id("Commit").Op("==").Lit("")).Block(
			Id("Commit").Op("=").Lit(commit),
		),
	)

	err := os.WriteFile(outputFile, []byte(fmt.Sprintf("%#v", f)), 0660)
	if err != nil {
		log.Fatalln(err)
	}
}
