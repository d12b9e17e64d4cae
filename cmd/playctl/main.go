package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const appName string = "playctl"

func main() {
	ctx := context.Background()

	ctx, _, cleanup := o11y.Init(ctx, appName, buildinfo.SourceVersion(), env.GetVariableOrDefault(ctx, "LOG_FORMAT", "json"))
	defer cleanup()

	cmd := NewCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		cleanup()
		os.Exit(1)
	}
}
