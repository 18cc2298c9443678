// Command carbonctl is the operator CLI: factor table, offline estimates,
// database migrations and bearer tokens.
package main

import (
	"fmt"
	"os"

	"github.com/heartmarshall/carbonfootprint-backend/internal/app"
	"github.com/heartmarshall/carbonfootprint-backend/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(app.BuildVersion()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
