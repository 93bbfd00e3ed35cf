package main

import "github.com/nockbuild/hoonscan/cmd"

func main() {
	cmd.Execute()
}
