package service

import (
	"context"

	"voiceplc/internal/interpreter"
	"voiceplc/internal/logger"
	"voiceplc/internal/models"
)

// CommandService drives the pipeline: raw text in, Result plus rendered
// response out. It is strategy-agnostic: any Interpreter satisfying the
// contract slots in without touching execution.
type CommandService struct {
	interp    interpreter.Interpreter
	exec      *Executor
	formatter Formatter
	log       *logger.Logger
}

func NewCommandService(interp interpreter.Interpreter, exec *Executor, log *logger.Logger) *CommandService {
	return &CommandService{interp: interp, exec: exec, log: log}
}

// Process interprets, executes, and renders one command. Interpretation
// failures become error Results and go through the same history path as
// everything else.
func (s *CommandService) Process(ctx context.Context, text string, mode Mode) (models.Result, string) {
	var res models.Result
	in, err := s.interp.Interpret(ctx, text)
	if err != nil {
		res = s.exec.Fail(text, err)
	} else {
		res = s.exec.Execute(ctx, text, in)
	}

	rendered, err := s.formatter.Render(res, mode)
	if err != nil {
		// only reachable if the Result itself cannot serialize
		s.log.Errorw("render_failed", "err", err, "kind", res.Kind)
		rendered = "Could not render response."
	}
	return res, rendered
}
