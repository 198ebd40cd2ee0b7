/*
Package runner implements the interactive read-apply-print loop of the maze editor.

It sits between a ports.Editor (the engine) and the user. Each input line is sanitized,
parsed into a domain.Command and applied to the session state; the result is reported
through a pluggable IOHandler. Solved paths are revealed step by step through an
animation.Player when the handler supports it.

# Key Components

  - Runner: the loop. Rejected commands are reported and never end it.
  - IOHandler: decouples how commands are read and results shown.
  - TextHandler: line commands on a terminal, with optional in-place animation.
  - JSONHandler: NDJSON in and out for scripted clients.

# Usage

	r := runner.NewRunner(mazesolver.New(),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout, runner.WithPrompt("> "))),
	)
	state, _ := domain.NewState(15, 15)
	if err := r.Run(ctx, state); err != nil {
		log.Fatal(err)
	}
*/
package runner
