package main

import "github.com/nfrund/funnel/cmd/funnelctl/cmd"

func main() {
	cmd.Execute()
}
