package main

import (
	"os"

	"github.com/medora/tenant-seeder/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewTenantCommand(&cli.App{})))
}
