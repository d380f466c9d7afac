package main

import "github.com/IgorMello0/auraia-hub/cmd"

func main() {
	cmd.Execute()
}
