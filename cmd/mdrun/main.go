// Entrypoint for the mdrun CLI; delegates to the Cobra root command in cmd/root.go.
package main

import (
	"github.com/argonmd/ljmd/cmd"
)

func main() {
	cmd.Execute()
}
