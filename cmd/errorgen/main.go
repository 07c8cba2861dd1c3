package main

import (
	"flag"
	"log"

	"github.com/erpcore/go-fin-ledger/internal/common/codegen/errorgen"
)

func main() {
	csvPath := flag.String("csv", "./storages/errors-map.csv", "error map source")
	output := flag.String("out", "./internal/models/error_map.go", "generated file")
	flag.Parse()

	if err := errorgen.GenerateErrorMapFromCSV(*csvPath, *output); err != nil {
		log.Fatalf("errorgen: %v", err)
	}
	log.Printf("writing file: %s", *output)
}
