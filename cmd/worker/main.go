package main

import "github.com/erpcore/go-fin-ledger/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
