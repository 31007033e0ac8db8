package main

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/mattn/go-shellwords"
)

// editorArgs splits an $EDITOR value such as `code --wait` and appends the
// file to open.
func editorArgs(editor, path string) ([]string, error) {
	args, err := shellwords.Parse(editor)

	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, errors.New("empty editor command")
	}

	return append(args, path), nil
}

func runEditor(ctx context.Context, editor, path string) error {
	args, err := editorArgs(editor, path)

	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
