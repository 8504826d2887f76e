/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package main

import (
	"chardetect/cmd"
)

func main() {
	cmd.Execute()
}

// go build -ldflags="-s -w -X 'chardetect/internal/version.Version=v1.0.0' -X 'chardetect/internal/version.Commit=$(git rev-parse HEAD)' -X 'chardetect/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)'" -o chardetect
