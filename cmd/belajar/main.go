package main

import (
	"context"

	"github.com/arifzakri/belajar/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}

