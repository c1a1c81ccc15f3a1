package main

import "github.com/vfg2006/instagram-insights-etl/cmd/etl/cmd"

func main() {
	cmd.Execute()
}
