package main

import "github.com/musesonar/sonar-cli/cmd"

func main() {
	cmd.Execute()
}
