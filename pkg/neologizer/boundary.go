package neologizer

import (
	"context"
	"io"
	"strings"
)

// InputSource supplies the source text. Missing input is the empty string,
// not an error.
type InputSource interface {
	InputText(ctx context.Context) (string, error)
}

// OutputSink delivers rendered output.
type OutputSink interface {
	ShowOutput(ctx context.Context, text string) error
}

// TextInput is source text held in memory.
type TextInput string

func (t TextInput) InputText(context.Context) (string, error) {
	return string(t), nil
}

// ReaderInput reads the whole of Reader. A nil Reader yields "".
type ReaderInput struct {
	Reader io.Reader
}

func (r ReaderInput) InputText(ctx context.Context) (string, error) {
	if r.Reader == nil {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := io.ReadAll(r.Reader)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// InputFunc adapts a function to InputSource.
type InputFunc func(ctx context.Context) (string, error)

func (f InputFunc) InputText(ctx context.Context) (string, error) {
	return f(ctx)
}

// WriterOutput writes output to Writer, ending it with a newline.
type WriterOutput struct {
	Writer io.Writer
}

func (w WriterOutput) ShowOutput(_ context.Context, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w.Writer, text)
	return err
}

// OutputFunc adapts a function to OutputSink.
type OutputFunc func(ctx context.Context, text string) error

func (f OutputFunc) ShowOutput(ctx context.Context, text string) error {
	return f(ctx, text)
}
