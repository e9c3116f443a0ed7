package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"regiontrip/internal/console"
	"regiontrip/internal/navigator"
)

// App is what a command runs against: the wired dependencies plus the
// console streams. All prompts share one Input so buffered lines aren't lost.
type App struct {
	*Wire
	In  *console.Input
	Out io.Writer
}

func New(w *Wire, in io.Reader, out io.Writer) *App {
	return &App{
		Wire: w,
		In:   console.NewInput(in),
		Out:  out,
	}
}

// EnsureAppKey asks for the app key when none was configured. An empty answer
// prints a notice and returns ErrMissingAppKey.
func (a *App) EnsureAppKey() error {
	if a.Config.AppKey != "" {
		return nil
	}
	a.View(a.Out).Prompt(console.MsgAppKeyPrompt)
	key, err := a.In.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if key == "" {
		fmt.Fprintln(a.Out, a.Messages.Text(console.MsgAppKeyMissing))
		return ErrMissingAppKey
	}
	a.SetAppKey(key)
	return nil
}

// Explore prints the title, makes sure an app key is available and runs the
// interactive explorer.
func (a *App) Explore(ctx context.Context, rng *rand.Rand) (navigator.Result, error) {
	a.View(a.Out).Title()
	if err := a.EnsureAppKey(); err != nil {
		return navigator.Result{}, err
	}
	return a.Session(a.In, a.Out, rng).Run(ctx)
}
