package main

import (
	"io"

	"github.com/diwise/playgrounds/internal/pkg/application/exercises"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort
	controlPort

	exercisesPath
	opaPath

	logFormat
)

type AppConfig struct {
	exercisesConfig *exercises.Config
	opaConfig       io.ReadCloser

	publicPort  string
	controlPort string
}
