package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"rondo/pkg/engine"
	material "rondo/pkg/eval/material"
	pesto "rondo/pkg/eval/pesto"
	"rondo/pkg/uci"
)

const (
	name   = "Rondo"
	author = "Rondo authors"
)

var (
	versionName = "dev"
	flgEval     string
)

func main() {
	flag.StringVar(&flgEval, "eval", "pesto", "specifies evaluation function")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags)

	logger.Println(name,
		"VersionName", versionName,
		"RuntimeVersion", runtime.Version())

	var eng = engine.NewEngine(evalBuilder(flgEval))

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Hash", Min: 4, Max: 1 << 16, Value: &eng.Hash},
			&uci.IntOption{Name: "Threads", Min: 1, Max: runtime.NumCPU(), Value: &eng.Threads},
		},
	)

	protocol.Run(logger)
}

func evalBuilder(name string) func() engine.Evaluator {
	return func() engine.Evaluator {
		switch name {
		case "pesto":
			return pesto.NewEvaluationService()
		case "material":
			return material.NewEvaluationService()
		}
		panic(fmt.Errorf("bad eval %v", name))
	}
}
