package main

import (
	"os"

	"github.com/PhelGc/fermenta/internal/cli"
)

func main() {
	// El código de salida lo decide el comando ejecutado
	os.Exit(cli.Execute())
}
