// Command catpoint drives the home security alarm engine from the CLI.
package main

import "github.com/huylq94/uda-security/cmd/catpoint/cmd"

func main() {
	cmd.Execute()
}
