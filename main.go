package main

import "github.com/keptn-contrib/gh-label-sync/cmd"

func main() {
	cmd.Execute()
}
