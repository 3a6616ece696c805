package main

import (
	"github.com/diwise/api-standardnames/internal/pkg/presentation/cli"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.SourceVersion())
	cli.Execute()
}
