package main

import "github.com/Pix3ltools-lab/pix3lwiki/cmd/pix3lwiki/cmd"

func main() {
	cmd.Execute()
}
