package protocol

import (
	"strconv"

	"pkg.jsn.cam/bmireduce/pkg/bmireduce"
)

// Worker processes receive their assignment through the environment.
const (
	// EnvRole marks a process as a worker when set to RoleWorker.
	EnvRole    = "BMIREDUCE_ROLE"
	RoleWorker = "worker"

	// EnvPrefix is the envconfig prefix of WorkerSpec.
	EnvPrefix = "BMIREDUCE_WORKER"
)

// ResultFD is the descriptor number of the result pipe in the worker.
// It is the first entry of exec.Cmd.ExtraFiles.
const ResultFD = 3

// WorkerSpec is everything a worker process needs to compute its partial
// aggregate. Field names map to BMIREDUCE_WORKER_<NAME> variables.
type WorkerSpec struct {
	File     string `envconfig:"FILE" required:"true"`
	Start    int    `envconfig:"START" required:"true"`
	Lines    int    `envconfig:"LINES" required:"true"`
	Index    int    `envconfig:"INDEX"`
	RunID    string `envconfig:"RUN_ID"`
	Version  string `envconfig:"VERSION" required:"true"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// NewWorkerSpec builds the spec for worker index over partition part.
func NewWorkerSpec(file string, index int, part bmireduce.Partition, runID, logLevel string) WorkerSpec {
	return WorkerSpec{
		File:     file,
		Start:    part.Start,
		Lines:    part.Length,
		Index:    index,
		RunID:    runID,
		Version:  Version,
		LogLevel: logLevel,
	}
}

// Partition returns the line range assigned to the worker.
func (s WorkerSpec) Partition() bmireduce.Partition {
	return bmireduce.Partition{Start: s.Start, Length: s.Lines}
}

// Environ renders the spec as KEY=value entries, role marker included.
func (s WorkerSpec) Environ() []string {
	env := []string{
		EnvRole + "=" + RoleWorker,
		EnvPrefix + "_FILE=" + s.File,
		EnvPrefix + "_START=" + strconv.Itoa(s.Start),
		EnvPrefix + "_LINES=" + strconv.Itoa(s.Lines),
		EnvPrefix + "_INDEX=" + strconv.Itoa(s.Index),
		EnvPrefix + "_RUN_ID=" + s.RunID,
		EnvPrefix + "_VERSION=" + s.Version,
	}
	if s.LogLevel != "" {
		env = append(env, EnvPrefix+"_LOG_LEVEL="+s.LogLevel)
	}
	return env
}
