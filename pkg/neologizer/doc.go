// Package neologizer ties the pipeline together: it reads source text from an
// InputSource, tokenizes it, generates new words and, in convert mode,
// substitutes them back into the text. Pipe additionally renders the result
// with a present.Presenter and hands it to an OutputSink.
//
// The input and output boundaries are small interfaces so the same Service
// backs the CLI (files, stdin, stdout) and the HTTP playground (request body,
// JSON response):
//
//	svc := neologizer.New(neologizer.WithLogger(log))
//	err := svc.Pipe(ctx,
//		neologizer.ReaderInput{Reader: os.Stdin},
//		neologizer.WriterOutput{Writer: os.Stdout},
//		neologizer.Request{Mode: neologizer.ModeGenerate},
//		present.New(present.FormatList),
//	)
//
// When nothing could be generated Run returns generator.ErrInsufficientCorpus
// and Pipe shows present.InsufficientNotice instead of empty output.
package neologizer
